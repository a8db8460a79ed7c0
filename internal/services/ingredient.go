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

type IngredientService interface {
	GetAll(ctx context.Context) ([]*types.Ingredient, error)
	GetByID(ctx context.Context, ingredientID uint) (*types.Ingredient, error)
	GetRecommendedDailyAllowance(ctx context.Context) (*types.RecommendedDailyAllowance, error)
}

type ingredientService struct {
	db             *gorm.DB
	log            *logger.Logger
	ingredientRepo repos.IngredientRepo
	rdaRepo        repos.RecommendedDailyAllowanceRepo
}

func NewIngredientService(
	db *gorm.DB,
	baseLog *logger.Logger,
	ingredientRepo repos.IngredientRepo,
	rdaRepo repos.RecommendedDailyAllowanceRepo,
) IngredientService {
	serviceLog := baseLog.With("service", "IngredientService")
	return &ingredientService{db: db, log: serviceLog, ingredientRepo: ingredientRepo, rdaRepo: rdaRepo}
}

func (s *ingredientService) GetAll(ctx context.Context) ([]*types.Ingredient, error) {
	return s.ingredientRepo.GetAll(ctx, nil)
}

func (s *ingredientService) GetByID(ctx context.Context, ingredientID uint) (*types.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, nil, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("load ingredient: %w", err)
	}
	if ingredient == nil {
		return nil, apperrors.ErrNotFound
	}
	return ingredient, nil
}

func (s *ingredientService) GetRecommendedDailyAllowance(ctx context.Context) (*types.RecommendedDailyAllowance, error) {
	rda, err := s.rdaRepo.Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load recommended daily allowance: %w", err)
	}
	if rda == nil {
		return nil, apperrors.ErrNotFound
	}
	return rda, nil
}
