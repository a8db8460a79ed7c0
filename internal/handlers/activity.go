package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/services"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

var (
	errNoActivities     = errors.New("no activities found")
	errNoUserActivities = errors.New("no activities associated with specified user found")
)

type ActivityHandler struct {
	log             *logger.Logger
	activityService services.ActivityService
}

func NewActivityHandler(log *logger.Logger, activityService services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		log:             log.With("handler", "ActivityHandler"),
		activityService: activityService,
	}
}

type activityRequest struct {
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Calories    int       `json:"calories"`
	Started     time.Time `json:"started"`
	UserID      uint      `json:"user_id"`
}

func (h *ActivityHandler) GetAll(c *gin.Context) {
	activities, err := h.activityService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	if len(activities) == 0 {
		RespondError(c, http.StatusNotFound, "not_found", errNoActivities)
		return
	}
	RespondOK(c, activities)
}

func (h *ActivityHandler) GetOne(c *gin.Context) {
	activityID, ok := pathID(c, "activity-id")
	if !ok {
		return
	}
	activity, err := h.activityService.GetByID(c.Request.Context(), activityID)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, activity)
}

func (h *ActivityHandler) GetByUser(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	activities, err := h.activityService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	if len(activities) == 0 {
		RespondError(c, http.StatusNotFound, "not_found", errNoUserActivities)
		return
	}
	RespondOK(c, activities)
}

func (h *ActivityHandler) Create(c *gin.Context) {
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	activity := &types.Activity{
		Description: req.Description,
		Duration:    req.Duration,
		Calories:    req.Calories,
		Started:     req.Started,
		UserID:      req.UserID,
	}
	if err := h.activityService.Create(c.Request.Context(), activity); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondCreated(c, activity)
}

func (h *ActivityHandler) Update(c *gin.Context) {
	activityID, ok := pathID(c, "activity-id")
	if !ok {
		return
	}
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	activity := &types.Activity{
		ID:          activityID,
		Description: req.Description,
		Duration:    req.Duration,
		Calories:    req.Calories,
		Started:     req.Started,
		UserID:      req.UserID,
	}
	if err := h.activityService.Update(c.Request.Context(), activity); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, activity)
}

func (h *ActivityHandler) Delete(c *gin.Context) {
	activityID, ok := pathID(c, "activity-id")
	if !ok {
		return
	}
	if err := h.activityService.Delete(c.Request.Context(), activityID); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondNoContent(c)
}

func (h *ActivityHandler) DeleteByUser(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	if err := h.activityService.DeleteByUserID(c.Request.Context(), userID); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondNoContent(c)
}
