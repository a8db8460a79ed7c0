package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/services"
)

var errNoIngredients = errors.New("no ingredients found")

type IngredientHandler struct {
	log               *logger.Logger
	ingredientService services.IngredientService
}

func NewIngredientHandler(log *logger.Logger, ingredientService services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		log:               log.With("handler", "IngredientHandler"),
		ingredientService: ingredientService,
	}
}

func (h *IngredientHandler) GetAll(c *gin.Context) {
	ingredients, err := h.ingredientService.GetAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	if len(ingredients) == 0 {
		RespondError(c, http.StatusNotFound, "not_found", errNoIngredients)
		return
	}
	RespondOK(c, ingredients)
}

func (h *IngredientHandler) GetOne(c *gin.Context) {
	ingredientID, ok := pathID(c, "ingredient-id")
	if !ok {
		return
	}
	ingredient, err := h.ingredientService.GetByID(c.Request.Context(), ingredientID)
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, ingredient)
}

func (h *IngredientHandler) GetRecommendedDailyAllowances(c *gin.Context) {
	rda, err := h.ingredientService.GetRecommendedDailyAllowance(c.Request.Context())
	if err != nil {
		RespondServiceError(c, h.log, err)
		return
	}
	RespondOK(c, rda)
}
