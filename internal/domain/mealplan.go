// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MealSlot is the time of day a planned meal belongs to.
type MealSlot string

// Recognised meal slots.
const (
	Breakfast MealSlot = "BREAKFAST"
	Lunch     MealSlot = "LUNCH"
	Dinner    MealSlot = "DINNER"
)

// MealSlots lists every slot in day order.
var MealSlots = []MealSlot{Breakfast, Lunch, Dinner}

// ParseMealSlot matches s against the known slots, ignoring case.
func ParseMealSlot(s string) (MealSlot, error) {
	candidate := MealSlot(strings.ToUpper(s))
	for _, slot := range MealSlots {
		if candidate == slot {
			return slot, nil
		}
	}
	return "", Invalidf("Invalid meal type: %s", s)
}

func (m MealSlot) String() string { return string(m) }

// MealPlanEntry is one planned meal for a user on a calendar date.
type MealPlanEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PlanDate  time.Time
	Meal      MealSlot
	Title     *string
	Notes     *string
	CreatedAt time.Time
}

// MealPlanRepository is the port for meal plan persistence. Entries come
// back in the order they were saved.
type MealPlanRepository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]MealPlanEntry, error)
	DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error
	Save(ctx context.Context, entry MealPlanEntry) (MealPlanEntry, error)
}

// MealPlanStore is a MealPlanRepository that can group calls into a single
// transaction. fn's repository is only valid until fn returns; a non-nil
// error from fn rolls everything back.
type MealPlanStore interface {
	MealPlanRepository
	WithinTx(ctx context.Context, fn func(repo MealPlanRepository) error) error
}
