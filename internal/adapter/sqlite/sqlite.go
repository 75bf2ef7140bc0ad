// Package sqlite implements the domain repositories on an embedded SQLite
// database through gorm.
package sqlite

import (
	"context"
	"fmt"
	"time"

	"mealplans/internal/domain"

	gormsqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps a *gorm.DB and implements domain repository interfaces.
type DB struct {
	gorm *gorm.DB
}

var _ domain.MealPlanStore = (*DB)(nil)

// mealPlanRow is the persisted form of a domain.MealPlanEntry. Seq keeps
// insertion order, EntryID is the domain id and the plan date is stored as
// YYYY-MM-DD text.
type mealPlanRow struct {
	Seq       int64  `gorm:"primaryKey;autoIncrement"`
	EntryID   string `gorm:"column:entry_id;uniqueIndex;not null"`
	UserID    string `gorm:"index:idx_meal_plans_user_date;not null"`
	PlanDate  string `gorm:"index:idx_meal_plans_user_date;not null"`
	Meal      string `gorm:"not null"`
	Title     *string
	Notes     *string
	CreatedAt time.Time
}

func (mealPlanRow) TableName() string { return "meal_plans" }

// Open opens (or creates) the database at path and migrates the schema.
// ":memory:" gives a private in-memory database.
func Open(path string) (*DB, error) {
	g, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite allows a single writer, and every connection to ":memory:" is
	// its own database.
	sqlDB, err := g.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := g.AutoMigrate(&mealPlanRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return &DB{gorm: g}, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// FindByUserAndDate returns a user's entries for a date in insertion order.
func (d *DB) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealPlanEntry, error) {
	return mealPlanRepo{db: d.gorm}.FindByUserAndDate(ctx, userID, date)
}

// DeleteByUserAndDate removes every entry for a user and date.
func (d *DB) DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	return mealPlanRepo{db: d.gorm}.DeleteByUserAndDate(ctx, userID, date)
}

// Save inserts an entry, generating an ID when it has none.
func (d *DB) Save(ctx context.Context, entry domain.MealPlanEntry) (domain.MealPlanEntry, error) {
	return mealPlanRepo{db: d.gorm}.Save(ctx, entry)
}

// WithinTx runs fn inside a gorm transaction.
func (d *DB) WithinTx(ctx context.Context, fn func(repo domain.MealPlanRepository) error) error {
	return d.gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(mealPlanRepo{db: tx})
	})
}

type mealPlanRepo struct {
	db *gorm.DB
}

func (r mealPlanRepo) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealPlanEntry, error) {
	var rows []mealPlanRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND plan_date = ?", userID.String(), domain.FormatDate(date)).
		Order("seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find meal plans: %w", err)
	}

	out := make([]domain.MealPlanEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEntry()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r mealPlanRepo) DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND plan_date = ?", userID.String(), domain.FormatDate(date)).
		Delete(&mealPlanRow{}).Error
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

	row := mealPlanRow{
		EntryID:   entry.ID.String(),
		UserID:    entry.UserID.String(),
		PlanDate:  domain.FormatDate(entry.PlanDate),
		Meal:      entry.Meal.String(),
		Title:     entry.Title,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.MealPlanEntry{}, fmt.Errorf("insert meal plan: %w", err)
	}
	return entry, nil
}

func (row mealPlanRow) toEntry() (domain.MealPlanEntry, error) {
	id, err := uuid.Parse(row.EntryID)
	if err != nil {
		return domain.MealPlanEntry{}, fmt.Errorf("meal plan %d: bad id: %w", row.Seq, err)
	}
	userID, err := uuid.Parse(row.UserID)
	if err != nil {
		return domain.MealPlanEntry{}, fmt.Errorf("meal plan %d: bad user id: %w", row.Seq, err)
	}
	planDate, err := time.Parse(domain.DateLayout, row.PlanDate)
	if err != nil {
		return domain.MealPlanEntry{}, fmt.Errorf("meal plan %d: bad date: %w", row.Seq, err)
	}
	return domain.MealPlanEntry{
		ID:        id,
		UserID:    userID,
		PlanDate:  planDate,
		Meal:      domain.MealSlot(row.Meal),
		Title:     row.Title,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
	}, nil
}
