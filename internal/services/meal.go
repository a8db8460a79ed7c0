package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ferndale/nutritrack-backend/internal/clients/nutrition"
	"github.com/ferndale/nutritrack-backend/internal/logger"
	apperrors "github.com/ferndale/nutritrack-backend/internal/pkg/errors"
	"github.com/ferndale/nutritrack-backend/internal/repos"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

// MealService drives meal composition: name validation, create-vs-reuse,
// enrichment through the nutrition provider, ingredient dedup, and the two
// association tables. A meal's ingredient set is fixed at creation; reusing
// an existing name never re-queries the provider.
type MealService interface {
	GetAll(ctx context.Context) ([]*types.Meal, error)
	GetByID(ctx context.Context, mealID uint) (*types.Meal, error)
	GetIngredients(ctx context.Context, mealID uint) ([]*types.Ingredient, error)
	GetByUserID(ctx context.Context, userID uint) ([]*types.Meal, error)
	Create(ctx context.Context, name string) (*types.Meal, error)
	AttachToUser(ctx context.Context, userID uint, name string) (*types.Meal, error)
	Delete(ctx context.Context, mealID uint) error
	DetachAllFromUser(ctx context.Context, userID uint) error
	DetachFromUser(ctx context.Context, userID, mealID uint) error
}

type mealService struct {
	db                 *gorm.DB
	log                *logger.Logger
	nutritionClient    nutrition.Client
	mealRepo           repos.MealRepo
	ingredientRepo     repos.IngredientRepo
	mealIngredientRepo repos.MealIngredientRepo
	userMealRepo       repos.UserMealRepo
	foldNames          bool
}

func NewMealService(
	db *gorm.DB,
	baseLog *logger.Logger,
	nutritionClient nutrition.Client,
	mealRepo repos.MealRepo,
	ingredientRepo repos.IngredientRepo,
	mealIngredientRepo repos.MealIngredientRepo,
	userMealRepo repos.UserMealRepo,
	foldNames bool,
) MealService {
	serviceLog := baseLog.With("service", "MealService")
	return &mealService{
		db:                 db,
		log:                serviceLog,
		nutritionClient:    nutritionClient,
		mealRepo:           mealRepo,
		ingredientRepo:     ingredientRepo,
		mealIngredientRepo: mealIngredientRepo,
		userMealRepo:       userMealRepo,
		foldNames:          foldNames,
	}
}

func (s *mealService) GetAll(ctx context.Context) ([]*types.Meal, error) {
	return s.mealRepo.GetAll(ctx, nil)
}

func (s *mealService) GetByID(ctx context.Context, mealID uint) (*types.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, nil, mealID)
	if err != nil {
		return nil, fmt.Errorf("load meal: %w", err)
	}
	if meal == nil {
		return nil, apperrors.ErrNotFound
	}
	return meal, nil
}

func (s *mealService) GetIngredients(ctx context.Context, mealID uint) ([]*types.Ingredient, error) {
	meal, err := s.mealRepo.GetByID(ctx, nil, mealID)
	if err != nil {
		return nil, fmt.Errorf("load meal: %w", err)
	}
	if meal == nil {
		return nil, apperrors.ErrNotFound
	}
	return s.ingredientRepo.GetByMealID(ctx, nil, mealID)
}

func (s *mealService) GetByUserID(ctx context.Context, userID uint) ([]*types.Meal, error) {
	return s.mealRepo.GetByUserID(ctx, nil, userID)
}

// Create runs the full composition pipeline for a new meal name. The meal
// insert, ingredient dedup-or-inserts and association links happen in one
// transaction, so a failure mid-way leaves no orphan meal behind.
func (s *mealService) Create(ctx context.Context, name string) (*types.Meal, error) {
	meal := &types.Meal{Name: name}
	if details := meal.Validate(); len(details) > 0 {
		return nil, apperrors.NewValidationError(details)
	}

	existing, err := s.mealRepo.GetByName(ctx, nil, name, s.foldNames)
	if err != nil {
		return nil, fmt.Errorf("check meal name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyExists
	}

	items, err := s.enrich(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.compose(ctx, tx, meal, items)
	}); err != nil {
		return nil, err
	}
	return meal, nil
}

// AttachToUser links a meal to a user, composing the meal first when the
// name is unknown. An existing meal's ingredient set is reused as-is and a
// repeat attach of the same meal is a no-op.
func (s *mealService) AttachToUser(ctx context.Context, userID uint, name string) (*types.Meal, error) {
	meal := &types.Meal{Name: name}
	if details := meal.Validate(); len(details) > 0 {
		return nil, apperrors.NewValidationError(details)
	}

	existing, err := s.mealRepo.GetByName(ctx, nil, name, s.foldNames)
	if err != nil {
		return nil, fmt.Errorf("check meal name: %w", err)
	}

	var items []nutrition.FoodItem
	if existing == nil {
		items, err = s.enrich(ctx, name)
		if err != nil {
			return nil, err
		}
	} else {
		meal = existing
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if existing == nil {
			if err := s.compose(ctx, tx, meal, items); err != nil {
				return err
			}
		}
		return s.userMealRepo.Attach(ctx, tx, userID, meal.ID)
	}); err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *mealService) Delete(ctx context.Context, mealID uint) error {
	rows, err := s.mealRepo.Delete(ctx, nil, mealID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *mealService) DetachAllFromUser(ctx context.Context, userID uint) error {
	rows, err := s.userMealRepo.DeleteByUserID(ctx, nil, userID)
	if err != nil {
		return fmt.Errorf("detach user meals: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *mealService) DetachFromUser(ctx context.Context, userID, mealID uint) error {
	rows, err := s.userMealRepo.DeleteByUserAndMeal(ctx, nil, userID, mealID)
	if err != nil {
		return fmt.Errorf("detach user meal: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// enrich resolves the name through the provider. An empty result is the
// provider's "no match" answer and maps to ErrUnresolvableName.
func (s *mealService) enrich(ctx context.Context, name string) ([]nutrition.FoodItem, error) {
	items, err := s.nutritionClient.Lookup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("enrich meal %q: %w", name, err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrUnresolvableName
	}
	return items, nil
}

// compose inserts the meal row, dedups its ingredients and writes the
// meal-ingredient links, all on the caller's transaction.
func (s *mealService) compose(ctx context.Context, tx *gorm.DB, meal *types.Meal, items []nutrition.FoodItem) error {
	if err := s.mealRepo.Create(ctx, tx, meal); err != nil {
		// A lost create race surfaces here as ErrAlreadyExists.
		return err
	}

	ingredientIDs := make([]uint, 0, len(items))
	for _, item := range items {
		id, err := s.ingredientRepo.DedupOrInsert(ctx, tx, ingredientFromFoodItem(item))
		if err != nil {
			return fmt.Errorf("persist ingredient %q: %w", item.Name, err)
		}
		ingredientIDs = append(ingredientIDs, id)
	}

	if err := s.mealIngredientRepo.Link(ctx, tx, meal.ID, ingredientIDs); err != nil {
		return fmt.Errorf("link ingredients: %w", err)
	}
	return nil
}

func ingredientFromFoodItem(item nutrition.FoodItem) *types.Ingredient {
	return &types.Ingredient{
		Name:                item.Name,
		Calories:            item.Calories,
		ServingSizeG:        item.ServingSizeG,
		FatTotalG:           item.FatTotalG,
		FatSaturatedG:       item.FatSaturatedG,
		ProteinG:            item.ProteinG,
		SodiumMg:            item.SodiumMg,
		PotassiumMg:         item.PotassiumMg,
		CholesterolMg:       item.CholesterolMg,
		CarbohydratesTotalG: item.CarbohydratesTotalG,
		FiberG:              item.FiberG,
		SugarG:              item.SugarG,
	}
}
