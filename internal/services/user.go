package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	apperrors "github.com/ferndale/nutritrack-backend/internal/pkg/errors"
	"github.com/ferndale/nutritrack-backend/internal/repos"
	"github.com/ferndale/nutritrack-backend/internal/types"
	"github.com/ferndale/nutritrack-backend/internal/utils"
)

type UserService interface {
	GetAll(ctx context.Context) ([]*types.User, error)
	GetByID(ctx context.Context, userID uint) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
	Create(ctx context.Context, user *types.User, password string) error
	Update(ctx context.Context, user *types.User) error
	Delete(ctx context.Context, userID uint) error
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := baseLog.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (s *userService) GetAll(ctx context.Context) ([]*types.User, error) {
	return s.userRepo.GetAll(ctx, nil)
}

func (s *userService) GetByID(ctx context.Context, userID uint) (*types.User, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("load user by email: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, user *types.User, password string) error {
	details := user.Validate()
	if password == "" {
		details["password"] = "Password cannot be blank"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError(details)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if user.Level == "" {
		user.Level = types.LevelUser
	}
	return s.userRepo.Create(ctx, nil, user)
}

func (s *userService) Update(ctx context.Context, user *types.User) error {
	if details := user.Validate(); len(details) > 0 {
		return apperrors.NewValidationError(details)
	}

	existing, err := s.userRepo.GetByID(ctx, nil, user.ID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if existing == nil {
		return apperrors.ErrNotFound
	}
	// The password hash is never writable through updates.
	user.PasswordHash = existing.PasswordHash
	return s.userRepo.Update(ctx, nil, user)
}

func (s *userService) Delete(ctx context.Context, userID uint) error {
	rows, err := s.userRepo.Delete(ctx, nil, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
