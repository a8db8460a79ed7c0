package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type MealIngredientRepo interface {
	// Link records one row per (meal, ingredient) pair; pairs that already
	// exist are left untouched.
	Link(ctx context.Context, tx *gorm.DB, mealID uint, ingredientIDs []uint) error
	CountByMealID(ctx context.Context, tx *gorm.DB, mealID uint) (int64, error)
}

type mealIngredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealIngredientRepo(db *gorm.DB, baseLog *logger.Logger) MealIngredientRepo {
	repoLog := baseLog.With("repo", "MealIngredientRepo")
	return &mealIngredientRepo{db: db, log: repoLog}
}

func (r *mealIngredientRepo) Link(ctx context.Context, tx *gorm.DB, mealID uint, ingredientIDs []uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ingredientIDs) == 0 {
		return nil
	}

	rows := make([]*types.MealIngredient, 0, len(ingredientIDs))
	for _, ingredientID := range ingredientIDs {
		rows = append(rows, &types.MealIngredient{
			MealID:       mealID,
			IngredientID: ingredientID,
		})
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "meal_id"}, {Name: "ingredient_id"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *mealIngredientRepo) CountByMealID(ctx context.Context, tx *gorm.DB, mealID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.MealIngredient{}).
		Where("meal_id = ?", mealID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
