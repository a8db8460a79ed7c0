package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type IngredientRepo interface {
	// DedupOrInsert returns the id of the existing row matching the
	// (name, serving_size_g) dedup key, inserting one if none exists.
	// The unique index makes the insert race-safe: a concurrent insert of
	// the same key resolves to the winner's id.
	DedupOrInsert(ctx context.Context, tx *gorm.DB, ingredient *types.Ingredient) (uint, error)
	GetByID(ctx context.Context, tx *gorm.DB, ingredientID uint) (*types.Ingredient, error)
	GetByMealID(ctx context.Context, tx *gorm.DB, mealID uint) ([]*types.Ingredient, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Ingredient, error)
	CountByKey(ctx context.Context, tx *gorm.DB, name string, servingSizeG float64) (int64, error)
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	repoLog := baseLog.With("repo", "IngredientRepo")
	return &ingredientRepo{db: db, log: repoLog}
}

func (r *ingredientRepo) DedupOrInsert(ctx context.Context, tx *gorm.DB, ingredient *types.Ingredient) (uint, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "serving_size_g"}},
			DoNothing: true,
		}).
		Create(ingredient)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		return ingredient.ID, nil
	}

	// Conflict: a row for this key already exists, reuse its id.
	var existing types.Ingredient
	if err := transaction.WithContext(ctx).
		Where("name = ? AND serving_size_g = ?", ingredient.Name, ingredient.ServingSizeG).
		First(&existing).Error; err != nil {
		return 0, err
	}
	ingredient.ID = existing.ID
	return existing.ID, nil
}

func (r *ingredientRepo) GetByID(ctx context.Context, tx *gorm.DB, ingredientID uint) (*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var ingredient types.Ingredient
	if err := transaction.WithContext(ctx).
		First(&ingredient, ingredientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepo) GetByMealID(ctx context.Context, tx *gorm.DB, mealID uint) ([]*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Ingredient
	if err := transaction.WithContext(ctx).
		Joins("INNER JOIN meals_ingredients ON meals_ingredients.ingredient_id = ingredients.id").
		Where("meals_ingredients.meal_id = ?", mealID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ingredientRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Ingredient, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Ingredient
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *ingredientRepo) CountByKey(ctx context.Context, tx *gorm.DB, name string, servingSizeG float64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Ingredient{}).
		Where("name = ? AND serving_size_g = ?", name, servingSizeG).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
