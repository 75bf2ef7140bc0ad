package postgres

import (
	"context"
	"fmt"
	"time"

	"mealplans/internal/domain"

	"github.com/google/uuid"
)

var _ domain.MealPlanStore = (*DB)(nil)

// FindByUserAndDate returns a user's entries for a date in insertion order.
func (d *DB) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealPlanEntry, error) {
	return mealPlanRepo{q: d.sql}.FindByUserAndDate(ctx, userID, date)
}

// DeleteByUserAndDate removes every entry for a user and date.
func (d *DB) DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	return mealPlanRepo{q: d.sql}.DeleteByUserAndDate(ctx, userID, date)
}

// Save inserts an entry, generating an ID when it has none.
func (d *DB) Save(ctx context.Context, entry domain.MealPlanEntry) (domain.MealPlanEntry, error) {
	return mealPlanRepo{q: d.sql}.Save(ctx, entry)
}

// WithinTx runs fn inside a transaction, committing only if fn succeeds.
func (d *DB) WithinTx(ctx context.Context, fn func(repo domain.MealPlanRepository) error) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(mealPlanRepo{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type mealPlanRepo struct {
	q querier
}

func (r mealPlanRepo) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealPlanEntry, error) {
	date = domain.NormalizeDate(date)
	rows, err := r.q.QueryContext(ctx,
		"SELECT id, meal, title, notes, created_at FROM meal_plans WHERE user_id=$1 AND plan_date=$2 ORDER BY seq;",
		userID, domain.FormatDate(date))
	if err != nil {
		return nil, fmt.Errorf("find meal plans: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.MealPlanEntry, 0)
	for rows.Next() {
		var (
			e    domain.MealPlanEntry
			meal string
		)
		if err := rows.Scan(&e.ID, &meal, &e.Title, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meal plan: %w", err)
		}
		e.UserID = userID
		e.PlanDate = date
		e.Meal = domain.MealSlot(meal)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r mealPlanRepo) DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	_, err := r.q.ExecContext(ctx, "DELETE FROM meal_plans WHERE user_id=$1 AND plan_date=$2;",
		userID, domain.FormatDate(date))
	if err != nil {
		return fmt.Errorf("delete meal plans: %w", err)
	}
	return nil
}

func (r mealPlanRepo) Save(ctx context.Context, entry domain.MealPlanEntry) (domain.MealPlanEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.PlanDate = domain.NormalizeDate(entry.PlanDate)
	entry.CreatedAt = time.Now().UTC()

	_, err := r.q.ExecContext(ctx,
		"INSERT INTO meal_plans(id, user_id, plan_date, meal, title, notes, created_at) VALUES($1, $2, $3, $4, $5, $6, $7);",
		entry.ID, entry.UserID, domain.FormatDate(entry.PlanDate), entry.Meal.String(), entry.Title, entry.Notes, entry.CreatedAt,
	)
	if err != nil {
		return domain.MealPlanEntry{}, fmt.Errorf("insert meal plan: %w", err)
	}
	return entry, nil
}
