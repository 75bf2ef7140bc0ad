// Package config loads service settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Store kinds accepted in STORE.
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
)

// DefaultDemoUserID is the user every request acts as unless DEMO_USER_ID says otherwise.
var DefaultDemoUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Config holds the configuration for the application.
type Config struct {
	Addr        string
	Store       string
	DatabaseURL string
	SQLitePath  string
	DemoUserID  uuid.UUID
}

// Load reads configuration from the process environment, falling back to
// values in ./.env when present.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped and
// the process environment always wins over file values.
func LoadFiles(files ...string) (*Config, error) {
	fileVals := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		for k, v := range vals {
			fileVals[k] = v
		}
	}

	env := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		if v := fileVals[key]; v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Addr:        env("ADDR", ":8080"),
		DatabaseURL: env("DATABASE_URL", ""),
		SQLitePath:  env("SQLITE_PATH", "mealplans.db"),
		DemoUserID:  DefaultDemoUserID,
	}

	cfg.Store = env("STORE", "")
	if cfg.Store == "" {
		cfg.Store = StoreSQLite
		if cfg.DatabaseURL != "" {
			cfg.Store = StorePostgres
		}
	}
	switch cfg.Store {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required")
		}
	case StoreSQLite, StoreMemory:
	default:
		return nil, fmt.Errorf("STORE must be one of %q, %q or %q, got %q", StorePostgres, StoreSQLite, StoreMemory, cfg.Store)
	}

	if v := env("DEMO_USER_ID", ""); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("DEMO_USER_ID: %w", err)
		}
		if id == uuid.Nil {
			return nil, errors.New("DEMO_USER_ID must not be the nil UUID")
		}
		cfg.DemoUserID = id
	}

	return cfg, nil
}
