package memory

import (
	"context"
	"testing"
	"time"

	"mealplans/internal/adapter/storetest"
	"mealplans/internal/domain"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestMealPlanRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	// Empty
	entries, err := db.FindByUserAndDate(ctx, userID, day)
	if err != nil {
		t.Fatalf("FindByUserAndDate: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", entries)
	}

	// Save assigns an id
	saved, err := db.Save(ctx, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Dinner, Title: strPtr("Curry")})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Error("expected non-nil ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	// Save keeps a caller-provided id
	fixed := uuid.New()
	again, _ := db.Save(ctx, domain.MealPlanEntry{ID: fixed, UserID: userID, PlanDate: day, Meal: domain.Dinner})
	if again.ID != fixed {
		t.Errorf("expected id %s, got %s", fixed, again.ID)
	}

	entries, _ = db.FindByUserAndDate(ctx, userID, day)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != saved.ID || entries[1].ID != fixed {
		t.Error("expected insertion order to be preserved")
	}
	if *entries[0].Title != "Curry" {
		t.Errorf("expected Curry, got %s", *entries[0].Title)
	}

	// Mutating a returned entry does not reach the store
	*entries[0].Title = "changed"
	entries, _ = db.FindByUserAndDate(ctx, userID, day)
	if *entries[0].Title != "Curry" {
		t.Error("stored entry was mutated through a returned pointer")
	}

	// Other user and other day see nothing
	if other, _ := db.FindByUserAndDate(ctx, uuid.New(), day); len(other) != 0 {
		t.Error("expected 0 entries for other user")
	}
	if other, _ := db.FindByUserAndDate(ctx, userID, day.AddDate(0, 0, 1)); len(other) != 0 {
		t.Error("expected 0 entries for other day")
	}

	// Delete only touches the key
	_, _ = db.Save(ctx, domain.MealPlanEntry{UserID: userID, PlanDate: day.AddDate(0, 0, 1), Meal: domain.Lunch})
	if err := db.DeleteByUserAndDate(ctx, userID, day); err != nil {
		t.Fatalf("DeleteByUserAndDate: %v", err)
	}
	if entries, _ = db.FindByUserAndDate(ctx, userID, day); len(entries) != 0 {
		t.Errorf("expected 0 entries after delete, got %d", len(entries))
	}
	if entries, _ = db.FindByUserAndDate(ctx, userID, day.AddDate(0, 0, 1)); len(entries) != 1 {
		t.Errorf("expected next day to survive, got %d", len(entries))
	}

	// Deleting an empty key is a no-op
	if err := db.DeleteByUserAndDate(ctx, userID, day); err != nil {
		t.Fatalf("DeleteByUserAndDate on empty key: %v", err)
	}
}

func TestWithinTx_PanicRestores(t *testing.T) {
	db := New()
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	original, err := db.Save(ctx, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Lunch})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected WithinTx to re-panic")
			}
		}()
		_ = db.WithinTx(ctx, func(repo domain.MealPlanRepository) error {
			_ = repo.DeleteByUserAndDate(ctx, userID, day)
			_, _ = repo.Save(ctx, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Dinner})
			panic("half-way through a replace")
		})
	}()

	// The lock must be released and the replace undone.
	entries, err := db.FindByUserAndDate(ctx, userID, day)
	if err != nil {
		t.Fatalf("FindByUserAndDate: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != original.ID {
		t.Fatalf("expected only the original entry, got %+v", entries)
	}
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, New())
}
