package repos

import (
	"context"
	"testing"

	"github.com/ferndale/nutritrack-backend/internal/repos/testutil"
	"github.com/ferndale/nutritrack-backend/internal/types"
)

func TestIngredientRepoDedupOrInsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewIngredientRepo(db, testutil.Logger(t))

	record := &types.Ingredient{
		Name:         "brisket",
		Calories:     1312.3,
		ServingSizeG: 453.592,
		FatTotalG:    82.9,
		ProteinG:     132,
		SodiumMg:     217,
	}
	firstID, err := repo.DedupOrInsert(ctx, tx, record)
	if err != nil {
		t.Fatalf("DedupOrInsert: %v", err)
	}
	if firstID == 0 {
		t.Fatalf("DedupOrInsert returned zero id")
	}

	// Same dedup key resolves to the same id, any number of times.
	for i := 0; i < 3; i++ {
		again := &types.Ingredient{Name: "brisket", ServingSizeG: 453.592, Calories: 1312.3}
		id, err := repo.DedupOrInsert(ctx, tx, again)
		if err != nil {
			t.Fatalf("DedupOrInsert repeat %d: %v", i, err)
		}
		if id != firstID {
			t.Fatalf("DedupOrInsert repeat %d: id=%d want %d", i, id, firstID)
		}
	}
	if count, err := repo.CountByKey(ctx, tx, "brisket", 453.592); err != nil || count != 1 {
		t.Fatalf("CountByKey: err=%v count=%d", err, count)
	}

	// A different serving size is a different ingredient.
	other := &types.Ingredient{Name: "brisket", ServingSizeG: 100}
	otherID, err := repo.DedupOrInsert(ctx, tx, other)
	if err != nil {
		t.Fatalf("DedupOrInsert other serving: %v", err)
	}
	if otherID == firstID {
		t.Fatalf("distinct serving size reused id %d", firstID)
	}
}

func TestIngredientRepoGetByMealID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewIngredientRepo(db, testutil.Logger(t))
	linkRepo := NewMealIngredientRepo(db, testutil.Logger(t))

	meal := testutil.SeedMeal(t, ctx, tx, "bbq plate")
	ing1 := testutil.SeedIngredient(t, ctx, tx, "brisket", 453.592)
	ing2 := testutil.SeedIngredient(t, ctx, tx, "fries", 100)
	testutil.SeedIngredient(t, ctx, tx, "slaw", 80) // unlinked

	if err := linkRepo.Link(ctx, tx, meal.ID, []uint{ing1.ID, ing2.ID}); err != nil {
		t.Fatalf("Link: %v", err)
	}

	rows, err := repo.GetByMealID(ctx, tx, meal.ID)
	if err != nil {
		t.Fatalf("GetByMealID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("GetByMealID: len=%d want 2", len(rows))
	}

	// Linking the same pair twice stays one row.
	if err := linkRepo.Link(ctx, tx, meal.ID, []uint{ing1.ID}); err != nil {
		t.Fatalf("Link repeat: %v", err)
	}
	if count, err := linkRepo.CountByMealID(ctx, tx, meal.ID); err != nil || count != 2 {
		t.Fatalf("CountByMealID after repeat link: err=%v count=%d", err, count)
	}
}
