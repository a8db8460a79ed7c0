package repos

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/ferndale/nutritrack-backend/internal/pkg/errors"
	"github.com/ferndale/nutritrack-backend/internal/repos/testutil"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

func TestMealRepoCreateConflict(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMealRepo(db, testutil.Logger(t))

	meal := &types.Meal{Name: "caesar salad"}
	if err := repo.Create(ctx, tx, meal); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if meal.ID == 0 {
		t.Fatalf("Create left zero id")
	}

	dup := &types.Meal{Name: "caesar salad"}
	if err := repo.Create(ctx, tx, dup); !errors.Is(err, apperrors.ErrAlreadyExists) {
		t.Fatalf("Create dup: err=%v want ErrAlreadyExists", err)
	}
}

func TestMealRepoGetByName(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMealRepo(db, testutil.Logger(t))
	testutil.SeedMeal(t, ctx, tx, "Beef Stew")

	if m, err := repo.GetByName(ctx, tx, "Beef Stew", false); err != nil || m == nil {
		t.Fatalf("GetByName exact: m=%v err=%v", m, err)
	}
	if m, err := repo.GetByName(ctx, tx, "beef stew", false); err != nil || m != nil {
		t.Fatalf("GetByName exact wrong case: m=%v err=%v, want miss", m, err)
	}
	if m, err := repo.GetByName(ctx, tx, "beef stew", true); err != nil || m == nil {
		t.Fatalf("GetByName fold: m=%v err=%v", m, err)
	}
	if m, err := repo.GetByName(ctx, tx, "unknown", true); err != nil || m != nil {
		t.Fatalf("GetByName unknown: m=%v err=%v, want miss", m, err)
	}
}

// Deleting a meal removes its association rows on both sides but leaves the
// ingredients themselves in place.
func TestMealRepoDeleteCascadeScope(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMealRepo(db, testutil.Logger(t))
	ingredientRepo := NewIngredientRepo(db, testutil.Logger(t))
	linkRepo := NewMealIngredientRepo(db, testutil.Logger(t))
	userMealRepo := NewUserMealRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "cascade@example.com")
	meal := testutil.SeedMeal(t, ctx, tx, "bbq plate")
	ing1 := testutil.SeedIngredient(t, ctx, tx, "brisket", 453.592)
	ing2 := testutil.SeedIngredient(t, ctx, tx, "fries", 100)
	if err := linkRepo.Link(ctx, tx, meal.ID, []uint{ing1.ID, ing2.ID}); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := userMealRepo.Attach(ctx, tx, user.ID, meal.ID); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	rows, err := repo.Delete(ctx, tx, meal.ID)
	if err != nil || rows != 1 {
		t.Fatalf("Delete: rows=%d err=%v", rows, err)
	}

	if m, err := repo.GetByID(ctx, tx, meal.ID); err != nil || m != nil {
		t.Fatalf("GetByID after delete: m=%v err=%v", m, err)
	}
	if count, err := linkRepo.CountByMealID(ctx, tx, meal.ID); err != nil || count != 0 {
		t.Fatalf("meal ingredient rows survived delete: err=%v count=%d", err, count)
	}
	if count, err := userMealRepo.CountByUserID(ctx, tx, user.ID); err != nil || count != 0 {
		t.Fatalf("user meal rows survived delete: err=%v count=%d", err, count)
	}
	// Shared reference data stays.
	for _, id := range []uint{ing1.ID, ing2.ID} {
		if ing, err := ingredientRepo.GetByID(ctx, tx, id); err != nil || ing == nil {
			t.Fatalf("ingredient %d gone after meal delete: ing=%v err=%v", id, ing, err)
		}
	}
}

func TestMealRepoDeleteMissing(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewMealRepo(db, testutil.Logger(t))
	rows, err := repo.Delete(context.Background(), tx, 999999)
	if err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
	if rows != 0 {
		t.Fatalf("Delete missing: rows=%d want 0", rows)
	}
}

func TestMealRepoGetByUserID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewMealRepo(db, testutil.Logger(t))
	userMealRepo := NewUserMealRepo(db, testutil.Logger(t))

	user := testutil.SeedUser(t, ctx, tx, "listmeals@example.com")
	m1 := testutil.SeedMeal(t, ctx, tx, "breakfast roll")
	m2 := testutil.SeedMeal(t, ctx, tx, "caesar salad")
	testutil.SeedMeal(t, ctx, tx, "unrelated meal")

	if err := userMealRepo.Attach(ctx, tx, user.ID, m1.ID); err != nil {
		t.Fatalf("Attach m1: %v", err)
	}
	if err := userMealRepo.Attach(ctx, tx, user.ID, m2.ID); err != nil {
		t.Fatalf("Attach m2: %v", err)
	}

	rows, err := repo.GetByUserID(ctx, tx, user.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("GetByUserID: len=%d want 2", len(rows))
	}
}
