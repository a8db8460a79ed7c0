package app

import (
	"gorm.io/gorm"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/repos"
)

type Repos struct {
	User           repos.UserRepo
	Activity       repos.ActivityRepo
	Meal           repos.MealRepo
	Ingredient     repos.IngredientRepo
	MealIngredient repos.MealIngredientRepo
	UserMeal       repos.UserMealRepo
	RDA            repos.RecommendedDailyAllowanceRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           repos.NewUserRepo(db, log),
		Activity:       repos.NewActivityRepo(db, log),
		Meal:           repos.NewMealRepo(db, log),
		Ingredient:     repos.NewIngredientRepo(db, log),
		MealIngredient: repos.NewMealIngredientRepo(db, log),
		UserMeal:       repos.NewUserMealRepo(db, log),
		RDA:            repos.NewRecommendedDailyAllowanceRepo(db, log),
	}
}
