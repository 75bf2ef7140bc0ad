// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"mealplans/internal/domain"

	"github.com/google/uuid"
)

// DB implements an in-memory database storage.
type DB struct {
	mu        sync.Mutex
	mealPlans []domain.MealPlanEntry
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.MealPlanStore = (*DB)(nil)

// FindByUserAndDate returns the entries for a user and date in insertion order.
func (db *DB) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealPlanEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.find(userID, date), nil
}

// DeleteByUserAndDate deletes every entry for a user and date.
func (db *DB) DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.delete(userID, date)
	return nil
}

// Save stores an entry, assigning an ID if it has none.
func (db *DB) Save(ctx context.Context, entry domain.MealPlanEntry) (domain.MealPlanEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.save(entry), nil
}

// WithinTx runs fn while holding the lock and restores the previous contents
// if fn fails or panics.
func (db *DB) WithinTx(ctx context.Context, fn func(repo domain.MealPlanRepository) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	snapshot := slices.Clone(db.mealPlans)
	committed := false
	defer func() {
		if !committed {
			db.mealPlans = snapshot
		}
	}()

	if err := fn(txRepo{db: db}); err != nil {
		return err
	}
	committed = true
	return nil
}

func (db *DB) find(userID uuid.UUID, date time.Time) []domain.MealPlanEntry {
	date = domain.NormalizeDate(date)
	out := make([]domain.MealPlanEntry, 0)
	for _, e := range db.mealPlans {
		if e.UserID == userID && e.PlanDate.Equal(date) {
			out = append(out, copyEntry(e))
		}
	}
	return out
}

func (db *DB) delete(userID uuid.UUID, date time.Time) {
	date = domain.NormalizeDate(date)
	kept := make([]domain.MealPlanEntry, 0, len(db.mealPlans))
	for _, e := range db.mealPlans {
		if e.UserID == userID && e.PlanDate.Equal(date) {
			continue
		}
		kept = append(kept, e)
	}
	db.mealPlans = kept
}

func (db *DB) save(entry domain.MealPlanEntry) domain.MealPlanEntry {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.PlanDate = domain.NormalizeDate(entry.PlanDate)
	entry.CreatedAt = time.Now().UTC()

	stored := copyEntry(entry)
	db.mealPlans = append(db.mealPlans, stored)
	return copyEntry(stored)
}

// txRepo runs against a DB whose lock is already held by WithinTx.
type txRepo struct {
	db *DB
}

func (r txRepo) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealPlanEntry, error) {
	return r.db.find(userID, date), nil
}

func (r txRepo) DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	r.db.delete(userID, date)
	return nil
}

func (r txRepo) Save(ctx context.Context, entry domain.MealPlanEntry) (domain.MealPlanEntry, error) {
	return r.db.save(entry), nil
}

// copyEntry detaches the optional text fields so callers cannot mutate stored rows.
func copyEntry(e domain.MealPlanEntry) domain.MealPlanEntry {
	e.Title = copyString(e.Title)
	e.Notes = copyString(e.Notes)
	return e
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
