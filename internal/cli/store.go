package cli

import (
	"fmt"

	"mealplans/internal/adapter/memory"
	"mealplans/internal/adapter/postgres"
	"mealplans/internal/adapter/sqlite"
	"mealplans/internal/config"
	"mealplans/internal/domain"
)

// openStore opens the store selected by cfg. The returned close function is
// never nil.
func openStore(cfg *config.Config) (domain.MealPlanStore, func() error, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		return db, db.Close, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		return db, db.Close, nil
	case config.StoreMemory:
		return memory.New(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
