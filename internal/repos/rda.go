package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type RecommendedDailyAllowanceRepo interface {
	// Get returns the single reference row, or nil when the table is unseeded.
	Get(ctx context.Context, tx *gorm.DB) (*types.RecommendedDailyAllowance, error)
}

type rdaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecommendedDailyAllowanceRepo(db *gorm.DB, baseLog *logger.Logger) RecommendedDailyAllowanceRepo {
	repoLog := baseLog.With("repo", "RecommendedDailyAllowanceRepo")
	return &rdaRepo{db: db, log: repoLog}
}

func (r *rdaRepo) Get(ctx context.Context, tx *gorm.DB) (*types.RecommendedDailyAllowance, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var rda types.RecommendedDailyAllowance
	if err := transaction.WithContext(ctx).
		First(&rda).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rda, nil
}
