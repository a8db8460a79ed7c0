package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/services"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

var errNoUsers = errors.New("no users found")

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         log.With("handler", "UserHandler"),
		userService: userService,
	}
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Level string `json:"level"`
}

func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	if len(users) == 0 {
		RespondError(c, http.StatusNotFound, "not_found", errNoUsers)
		return
	}
	RespondOK(c, users)
}

func (h *UserHandler) GetOne(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, user)
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email-address"))
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	user := &types.User{
		ID:    userID,
		Name:  req.Name,
		Email: req.Email,
		Level: req.Level,
	}
	if err := h.userService.Update(c.Request.Context(), user); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondNoContent(c)
}
