// Package storetest holds behaviour checks shared by every domain.MealPlanStore
// adapter.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"mealplans/internal/domain"

	"github.com/google/uuid"
)

// Run exercises store against the MealPlanStore contract. Every subtest uses
// a fresh random user, so a shared database does not need cleaning between runs.
func Run(t *testing.T, store domain.MealPlanStore) {
	t.Helper()
	ctx := context.Background()
	day := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	t.Run("empty key", func(t *testing.T) {
		entries, err := store.FindByUserAndDate(ctx, uuid.New(), day)
		if err != nil {
			t.Fatalf("FindByUserAndDate: %v", err)
		}
		if entries == nil || len(entries) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", entries)
		}
		if err := store.DeleteByUserAndDate(ctx, uuid.New(), day); err != nil {
			t.Fatalf("DeleteByUserAndDate on empty key: %v", err)
		}
	})

	t.Run("save and find preserve order and fields", func(t *testing.T) {
		userID := uuid.New()
		title, notes := "Congee", "with egg"
		in := []domain.MealPlanEntry{
			{UserID: userID, PlanDate: day, Meal: domain.Dinner, Title: &title},
			{UserID: userID, PlanDate: day, Meal: domain.Breakfast, Title: &title, Notes: &notes},
			{UserID: userID, PlanDate: day, Meal: domain.Dinner},
		}
		var ids []uuid.UUID
		for _, e := range in {
			saved, err := store.Save(ctx, e)
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			if saved.ID == uuid.Nil {
				t.Fatal("expected an ID to be assigned")
			}
			ids = append(ids, saved.ID)
		}

		got, err := store.FindByUserAndDate(ctx, userID, day)
		if err != nil {
			t.Fatalf("FindByUserAndDate: %v", err)
		}
		if len(got) != len(in) {
			t.Fatalf("expected %d entries, got %d", len(in), len(got))
		}
		for i := range in {
			if got[i].ID != ids[i] {
				t.Errorf("entry %d: expected id %s, got %s", i, ids[i], got[i].ID)
			}
			if got[i].Meal != in[i].Meal {
				t.Errorf("entry %d: expected meal %s, got %s", i, in[i].Meal, got[i].Meal)
			}
			if got[i].UserID != userID || !got[i].PlanDate.Equal(day) {
				t.Errorf("entry %d: wrong key %s %v", i, got[i].UserID, got[i].PlanDate)
			}
		}
		if got[1].Title == nil || *got[1].Title != title || got[1].Notes == nil || *got[1].Notes != notes {
			t.Errorf("optional text not preserved: %+v", got[1])
		}
		if got[2].Title != nil || got[2].Notes != nil {
			t.Errorf("expected nil optional text, got %+v", got[2])
		}
	})

	t.Run("keys are isolated", func(t *testing.T) {
		userID, other := uuid.New(), uuid.New()
		mustSave(t, store, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Lunch})
		mustSave(t, store, domain.MealPlanEntry{UserID: userID, PlanDate: day.AddDate(0, 0, 1), Meal: domain.Lunch})
		mustSave(t, store, domain.MealPlanEntry{UserID: other, PlanDate: day, Meal: domain.Lunch})

		if err := store.DeleteByUserAndDate(ctx, userID, day); err != nil {
			t.Fatalf("DeleteByUserAndDate: %v", err)
		}
		assertCount(t, store, userID, day, 0)
		assertCount(t, store, userID, day.AddDate(0, 0, 1), 1)
		assertCount(t, store, other, day, 1)
	})

	t.Run("transaction commits", func(t *testing.T) {
		userID := uuid.New()
		mustSave(t, store, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Lunch})

		err := store.WithinTx(ctx, func(repo domain.MealPlanRepository) error {
			if err := repo.DeleteByUserAndDate(ctx, userID, day); err != nil {
				return err
			}
			_, err := repo.Save(ctx, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Breakfast})
			return err
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		got, _ := store.FindByUserAndDate(ctx, userID, day)
		if len(got) != 1 || got[0].Meal != domain.Breakfast {
			t.Fatalf("expected committed replacement, got %+v", got)
		}
	})

	t.Run("transaction rolls back", func(t *testing.T) {
		userID := uuid.New()
		original := mustSave(t, store, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Lunch})

		boom := errors.New("boom")
		err := store.WithinTx(ctx, func(repo domain.MealPlanRepository) error {
			if err := repo.DeleteByUserAndDate(ctx, userID, day); err != nil {
				return err
			}
			if _, err := repo.Save(ctx, domain.MealPlanEntry{UserID: userID, PlanDate: day, Meal: domain.Dinner}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		got, _ := store.FindByUserAndDate(ctx, userID, day)
		if len(got) != 1 || got[0].ID != original.ID {
			t.Fatalf("expected original entry after rollback, got %+v", got)
		}
	})
}

func mustSave(t *testing.T, store domain.MealPlanRepository, e domain.MealPlanEntry) domain.MealPlanEntry {
	t.Helper()
	saved, err := store.Save(context.Background(), e)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	return saved
}

func assertCount(t *testing.T, store domain.MealPlanRepository, userID uuid.UUID, day time.Time, want int) {
	t.Helper()
	got, err := store.FindByUserAndDate(context.Background(), userID, day)
	if err != nil {
		t.Fatalf("FindByUserAndDate: %v", err)
	}
	if len(got) != want {
		t.Errorf("%s on %s: expected %d entries, got %d", userID, domain.FormatDate(day), want, len(got))
	}
}
