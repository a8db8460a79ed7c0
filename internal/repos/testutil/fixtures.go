package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/ferndale/nutritrack-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Name:         "test user",
		Email:        email,
		Level:        types.LevelUser,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedMeal(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Meal {
	tb.Helper()
	m := &types.Meal{Name: name}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed meal: %v", err)
	}
	return m
}

func SeedIngredient(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, servingSizeG float64) *types.Ingredient {
	tb.Helper()
	ing := &types.Ingredient{
		Name:         name,
		Calories:     100,
		ServingSizeG: servingSizeG,
		ProteinG:     1.5,
		SodiumMg:     10,
	}
	if err := tx.WithContext(ctx).Create(ing).Error; err != nil {
		tb.Fatalf("seed ingredient: %v", err)
	}
	return ing
}

func SeedActivity(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uint) *types.Activity {
	tb.Helper()
	a := &types.Activity{
		Description: "morning run",
		Duration:    30,
		Calories:    250,
		Started:     time.Now().UTC(),
		UserID:      userID,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed activity: %v", err)
	}
	return a
}
