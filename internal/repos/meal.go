package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	apperrors "github.com/ferndale/nutritrack-backend/internal/pkg/errors"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type MealRepo interface {
	// Create inserts the meal, relying on the unique index on name.
	// A concurrent or prior insert of the same name yields
	// apperrors.ErrAlreadyExists instead of a duplicate row.
	Create(ctx context.Context, tx *gorm.DB, meal *types.Meal) error
	GetByID(ctx context.Context, tx *gorm.DB, mealID uint) (*types.Meal, error)
	// GetByName matches exactly, or case-insensitively when fold is set.
	GetByName(ctx context.Context, tx *gorm.DB, name string, fold bool) (*types.Meal, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Meal, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Meal, error)
	// Delete returns the number of rows removed; the association tables are
	// cleaned up by the cascade rules.
	Delete(ctx context.Context, tx *gorm.DB, mealID uint) (int64, error)
}

type mealRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealRepo(db *gorm.DB, baseLog *logger.Logger) MealRepo {
	repoLog := baseLog.With("repo", "MealRepo")
	return &mealRepo{db: db, log: repoLog}
}

func (r *mealRepo) Create(ctx context.Context, tx *gorm.DB, meal *types.Meal) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(meal)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAlreadyExists
	}
	return nil
}

func (r *mealRepo) GetByID(ctx context.Context, tx *gorm.DB, mealID uint) (*types.Meal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var meal types.Meal
	if err := transaction.WithContext(ctx).
		First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepo) GetByName(ctx context.Context, tx *gorm.DB, name string, fold bool) (*types.Meal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx)
	if fold {
		query = query.Where("LOWER(name) = LOWER(?)", name)
	} else {
		query = query.Where("name = ?", name)
	}

	var meal types.Meal
	if err := query.First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (r *mealRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Meal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Meal
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mealRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Meal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Meal
	if err := transaction.WithContext(ctx).
		Joins("INNER JOIN users_meals ON users_meals.meal_id = meals.id").
		Where("users_meals.user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mealRepo) Delete(ctx context.Context, tx *gorm.DB, mealID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Delete(&types.Meal{}, mealID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
