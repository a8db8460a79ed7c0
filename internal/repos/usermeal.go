package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type UserMealRepo interface {
	// Attach records the (user, meal) association. Attaching an already
	// associated meal is a no-op, not a duplicate row.
	Attach(ctx context.Context, tx *gorm.DB, userID, mealID uint) error
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)
	// DeleteByUserID removes every association for the user, leaving the
	// meals themselves in place. Returns the number of rows removed.
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)
	DeleteByUserAndMeal(ctx context.Context, tx *gorm.DB, userID, mealID uint) (int64, error)
}

type userMealRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserMealRepo(db *gorm.DB, baseLog *logger.Logger) UserMealRepo {
	repoLog := baseLog.With("repo", "UserMealRepo")
	return &userMealRepo{db: db, log: repoLog}
}

func (r *userMealRepo) Attach(ctx context.Context, tx *gorm.DB, userID, mealID uint) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "meal_id"}},
			DoNothing: true,
		}).
		Create(&types.UserMeal{UserID: userID, MealID: mealID}).Error
}

func (r *userMealRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.UserMeal{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userMealRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.UserMeal{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *userMealRepo) DeleteByUserAndMeal(ctx context.Context, tx *gorm.DB, userID, mealID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("user_id = ? AND meal_id = ?", userID, mealID).
		Delete(&types.UserMeal{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
