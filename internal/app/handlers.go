package app

import (
	"github.com/ferndale/nutritrack-backend/internal/handlers"
	"github.com/ferndale/nutritrack-backend/internal/logger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Activity   *handlers.ActivityHandler
	Meal       *handlers.MealHandler
	Ingredient *handlers.IngredientHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       handlers.NewAuthHandler(log, serviceset.Auth, serviceset.User),
		User:       handlers.NewUserHandler(log, serviceset.User),
		Activity:   handlers.NewActivityHandler(log, serviceset.Activity),
		Meal:       handlers.NewMealHandler(log, serviceset.Meal),
		Ingredient: handlers.NewIngredientHandler(log, serviceset.Ingredient),
	}
}
