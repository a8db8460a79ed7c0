package app

import (
	"gorm.io/gorm"

	"github.com/ferndale/nutritrack-backend/internal/clients/nutrition"
	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	User       services.UserService
	Activity   services.ActivityService
	Meal       services.MealService
	Ingredient services.IngredientService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	nutritionClient := nutrition.NewClient(log)
	return Services{
		Auth:     services.NewAuthService(db, log, reposet.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		User:     services.NewUserService(db, log, reposet.User),
		Activity: services.NewActivityService(db, log, reposet.Activity, reposet.User),
		Meal: services.NewMealService(
			db,
			log,
			nutritionClient,
			reposet.Meal,
			reposet.Ingredient,
			reposet.MealIngredient,
			reposet.UserMeal,
			cfg.FoldMealNames,
		),
		Ingredient: services.NewIngredientService(db, log, reposet.Ingredient, reposet.RDA),
	}
}
