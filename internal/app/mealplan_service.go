// Package app holds the application services and business logic.
package app

import (
	"context"
	"time"

	"mealplans/internal/domain"

	"github.com/google/uuid"
)

// PlanRecord is the externally visible shape of a planned meal.
type PlanRecord struct {
	Meal  string  `json:"meal"`
	Title *string `json:"title"`
	Notes *string `json:"notes"`
}

// DayPlans is every planned meal for one date.
type DayPlans struct {
	Date  string       `json:"date"`
	Plans []PlanRecord `json:"plans"`
}

// MealPlanService encapsulates the meal-plan use cases.
type MealPlanService struct {
	store domain.MealPlanStore
}

// NewMealPlanService creates a MealPlanService backed by the given store.
func NewMealPlanService(store domain.MealPlanStore) *MealPlanService {
	return &MealPlanService{store: store}
}

// GetPlansForDate returns the user's plans for date in the order they were saved.
func (s *MealPlanService) GetPlansForDate(ctx context.Context, userID uuid.UUID, date time.Time) (*DayPlans, error) {
	date = domain.NormalizeDate(date)
	entries, err := s.store.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return toDayPlans(date, entries), nil
}

// SavePlansForDate replaces the user's plans for date with plans. The delete
// and every insert share one transaction: an unknown meal type leaves the
// previously stored plans untouched.
func (s *MealPlanService) SavePlansForDate(ctx context.Context, userID uuid.UUID, date time.Time, plans []PlanRecord) (*DayPlans, error) {
	date = domain.NormalizeDate(date)
	saved := make([]domain.MealPlanEntry, 0, len(plans))

	err := s.store.WithinTx(ctx, func(repo domain.MealPlanRepository) error {
		if err := repo.DeleteByUserAndDate(ctx, userID, date); err != nil {
			return err
		}
		for _, p := range plans {
			meal, err := domain.ParseMealSlot(p.Meal)
			if err != nil {
				return err
			}
			entry, err := repo.Save(ctx, domain.MealPlanEntry{
				UserID:   userID,
				PlanDate: date,
				Meal:     meal,
				Title:    p.Title,
				Notes:    p.Notes,
			})
			if err != nil {
				return err
			}
			saved = append(saved, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDayPlans(date, saved), nil
}

func toDayPlans(date time.Time, entries []domain.MealPlanEntry) *DayPlans {
	out := &DayPlans{
		Date:  domain.FormatDate(date),
		Plans: make([]PlanRecord, 0, len(entries)),
	}
	for _, e := range entries {
		out.Plans = append(out.Plans, PlanRecord{
			Meal:  e.Meal.String(),
			Title: e.Title,
			Notes: e.Notes,
		})
	}
	return out
}
