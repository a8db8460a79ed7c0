package app

import (
	"github.com/gin-gonic/gin"

	"github.com/ferndale/nutritrack-backend/internal/server"
)

func wireRouter(handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:       handlerset.Auth,
		AuthMiddleware:    middlewareset.Auth,
		UserHandler:       handlerset.User,
		ActivityHandler:   handlerset.Activity,
		MealHandler:       handlerset.Meal,
		IngredientHandler: handlerset.Ingredient,
	})
}
