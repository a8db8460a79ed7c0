package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/services"
)

var (
	errNoMeals     = errors.New("no meals found")
	errNoUserMeals = errors.New("no meals associated with specified user found")
)

type MealHandler struct {
	log         *logger.Logger
	mealService services.MealService
}

func NewMealHandler(log *logger.Logger, mealService services.MealService) *MealHandler {
	return &MealHandler{
		log:         log.With("handler", "MealHandler"),
		mealService: mealService,
	}
}

type createMealRequest struct {
	Name string `json:"name"`
}

func (h *MealHandler) GetAll(c *gin.Context) {
	meals, err := h.mealService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	if len(meals) == 0 {
		RespondError(c, http.StatusNotFound, "not_found", errNoMeals)
		return
	}
	RespondOK(c, meals)
}

func (h *MealHandler) GetOne(c *gin.Context) {
	mealID, ok := pathID(c, "meal-id")
	if !ok {
		return
	}
	meal, err := h.mealService.GetByID(c.Request.Context(), mealID)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, meal)
}

func (h *MealHandler) GetIngredients(c *gin.Context) {
	mealID, ok := pathID(c, "meal-id")
	if !ok {
		return
	}
	ingredients, err := h.mealService.GetIngredients(c.Request.Context(), mealID)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, ingredients)
}

func (h *MealHandler) Create(c *gin.Context) {
	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	meal, err := h.mealService.Create(c.Request.Context(), req.Name)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondCreated(c, meal)
}

func (h *MealHandler) Delete(c *gin.Context) {
	mealID, ok := pathID(c, "meal-id")
	if !ok {
		return
	}
	if err := h.mealService.Delete(c.Request.Context(), mealID); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondNoContent(c)
}

func (h *MealHandler) GetByUser(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	meals, err := h.mealService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	if len(meals) == 0 {
		RespondError(c, http.StatusNotFound, "not_found", errNoUserMeals)
		return
	}
	RespondOK(c, meals)
}

func (h *MealHandler) CreateForUser(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	meal, err := h.mealService.AttachToUser(c.Request.Context(), userID, req.Name)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondCreated(c, meal)
}

func (h *MealHandler) DeleteAllForUser(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	if err := h.mealService.DetachAllFromUser(c.Request.Context(), userID); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondNoContent(c)
}

func (h *MealHandler) DeleteOneForUser(c *gin.Context) {
	userID, ok := pathID(c, "user-id")
	if !ok {
		return
	}
	mealID, ok := pathID(c, "meal-id")
	if !ok {
		return
	}
	if err := h.mealService.DetachFromUser(c.Request.Context(), userID, mealID); err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondNoContent(c)
}

// pathID parses a numeric path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return 0, false
	}
	return uint(id), true
}
