package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"mealplans/internal/adapter/storetest"
	"mealplans/internal/domain"

	"github.com/google/uuid"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, openMemory(t))
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mealplans.db")
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
	title := "Dumplings"

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	saved, err := db.Save(ctx, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Dinner, Title: &title})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = db.Close() }()

	entries, err := db.FindByUserAndDate(ctx, userID, day)
	if err != nil {
		t.Fatalf("FindByUserAndDate: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != saved.ID || *entries[0].Title != title {
		t.Fatalf("unexpected entries after reopen: %+v", entries)
	}
}
