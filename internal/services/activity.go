package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	apperrors "github.com/ferndale/nutritrack-backend/internal/pkg/errors"
	"github.com/ferndale/nutritrack-backend/internal/repos"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

type ActivityService interface {
	GetAll(ctx context.Context) ([]*types.Activity, error)
	GetByID(ctx context.Context, activityID uint) (*types.Activity, error)
	GetByUserID(ctx context.Context, userID uint) ([]*types.Activity, error)
	Create(ctx context.Context, activity *types.Activity) error
	Update(ctx context.Context, activity *types.Activity) error
	Delete(ctx context.Context, activityID uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type activityService struct {
	db           *gorm.DB
	log          *logger.Logger
	activityRepo repos.ActivityRepo
	userRepo     repos.UserRepo
}

func NewActivityService(db *gorm.DB, baseLog *logger.Logger, activityRepo repos.ActivityRepo, userRepo repos.UserRepo) ActivityService {
	serviceLog := baseLog.With("service", "ActivityService")
	return &activityService{db: db, log: serviceLog, activityRepo: activityRepo, userRepo: userRepo}
}

func (s *activityService) GetAll(ctx context.Context) ([]*types.Activity, error) {
	return s.activityRepo.GetAll(ctx, nil)
}

func (s *activityService) GetByID(ctx context.Context, activityID uint) (*types.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, nil, activityID)
	if err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}
	if activity == nil {
		return nil, apperrors.ErrNotFound
	}
	return activity, nil
}

func (s *activityService) GetByUserID(ctx context.Context, userID uint) ([]*types.Activity, error) {
	return s.activityRepo.GetByUserID(ctx, nil, userID)
}

func (s *activityService) Create(ctx context.Context, activity *types.Activity) error {
	if details := activity.Validate(); len(details) > 0 {
		return apperrors.NewValidationError(details)
	}

	user, err := s.userRepo.GetByID(ctx, nil, activity.UserID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return apperrors.ErrNotFound
	}
	return s.activityRepo.Create(ctx, nil, activity)
}

func (s *activityService) Update(ctx context.Context, activity *types.Activity) error {
	if details := activity.Validate(); len(details) > 0 {
		return apperrors.NewValidationError(details)
	}

	existing, err := s.activityRepo.GetByID(ctx, nil, activity.ID)
	if err != nil {
		return fmt.Errorf("load activity: %w", err)
	}
	if existing == nil {
		return apperrors.ErrNotFound
	}
	return s.activityRepo.Update(ctx, nil, activity)
}

func (s *activityService) Delete(ctx context.Context, activityID uint) error {
	rows, err := s.activityRepo.Delete(ctx, nil, activityID)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *activityService) DeleteByUserID(ctx context.Context, userID uint) error {
	rows, err := s.activityRepo.DeleteByUserID(ctx, nil, userID)
	if err != nil {
		return fmt.Errorf("delete user activities: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
