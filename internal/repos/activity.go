package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type ActivityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, activity *types.Activity) error
	GetByID(ctx context.Context, tx *gorm.DB, activityID uint) (*types.Activity, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Activity, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Activity, error)
	Update(ctx context.Context, tx *gorm.DB, activity *types.Activity) error
	Delete(ctx context.Context, tx *gorm.DB, activityID uint) (int64, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)
}

type activityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityRepo(db *gorm.DB, baseLog *logger.Logger) ActivityRepo {
	repoLog := baseLog.With("repo", "ActivityRepo")
	return &activityRepo{db: db, log: repoLog}
}

func (r *activityRepo) Create(ctx context.Context, tx *gorm.DB, activity *types.Activity) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).Create(activity).Error
}

func (r *activityRepo) GetByID(ctx context.Context, tx *gorm.DB, activityID uint) (*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var activity types.Activity
	if err := transaction.WithContext(ctx).
		First(&activity, activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint) ([]*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Activity
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *activityRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Activity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Activity
	if err := transaction.WithContext(ctx).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *activityRepo) Update(ctx context.Context, tx *gorm.DB, activity *types.Activity) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).Save(activity).Error
}

func (r *activityRepo) Delete(ctx context.Context, tx *gorm.DB, activityID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Delete(&types.Activity{}, activityID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *activityRepo) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&types.Activity{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
