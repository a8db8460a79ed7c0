package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ferndale/nutritrack-backend/internal/handlers"
	"github.com/ferndale/nutritrack-backend/internal/middleware"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type RouterConfig struct {
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	UserHandler       *handlers.UserHandler
	ActivityHandler   *handlers.ActivityHandler
	MealHandler       *handlers.MealHandler
	IngredientHandler *handlers.IngredientHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/login", cfg.AuthHandler.Login)
	router.POST("/api/login/register", cfg.AuthHandler.Register)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	api.Use(cfg.AuthMiddleware.RequireLevel(types.LevelUser, types.LevelAdmin))

	api.GET("/login/validate", cfg.AuthHandler.Validate)

	// Meals
	api.GET("/meals", cfg.MealHandler.GetAll)
	api.POST("/meals", cfg.MealHandler.Create)
	api.GET("/meals/:meal-id", cfg.MealHandler.GetOne)
	api.DELETE("/meals/:meal-id", cfg.MealHandler.Delete)
	api.GET("/meals/:meal-id/ingredients", cfg.MealHandler.GetIngredients)

	// Ingredients
	api.GET("/ingredients", cfg.IngredientHandler.GetAll)
	api.GET("/ingredients/rda", cfg.IngredientHandler.GetRecommendedDailyAllowances)
	api.GET("/ingredients/:ingredient-id", cfg.IngredientHandler.GetOne)

	// Activities
	api.GET("/activities", cfg.ActivityHandler.GetAll)
	api.POST("/activities", cfg.ActivityHandler.Create)
	api.GET("/activities/:activity-id", cfg.ActivityHandler.GetOne)
	api.PUT("/activities/:activity-id", cfg.ActivityHandler.Update)
	api.DELETE("/activities/:activity-id", cfg.ActivityHandler.Delete)

	// Users
	api.GET("/users", cfg.UserHandler.GetAll)
	api.GET("/users/email/:email-address", cfg.UserHandler.GetByEmail)
	api.GET("/users/:user-id", cfg.UserHandler.GetOne)
	api.PUT("/users/:user-id", cfg.UserHandler.Update)
	api.DELETE("/users/:user-id", cfg.UserHandler.Delete)
	api.GET("/users/:user-id/activities", cfg.ActivityHandler.GetByUser)
	api.DELETE("/users/:user-id/activities", cfg.ActivityHandler.DeleteByUser)
	api.GET("/users/:user-id/meals", cfg.MealHandler.GetByUser)
	api.POST("/users/:user-id/meals", cfg.MealHandler.CreateForUser)
	api.DELETE("/users/:user-id/meals", cfg.MealHandler.DeleteAllForUser)
	api.DELETE("/users/:user-id/meals/:meal-id", cfg.MealHandler.DeleteOneForUser)

	return router
}
