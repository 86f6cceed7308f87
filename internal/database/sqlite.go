package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Config holds the settings for the embedded database file.
type Config struct {
	// Path to the database file. ":memory:" gives a private
	// in-memory database (used by the tests).
	Path        string
	ReadOnly    bool
	BusyTimeout time.Duration
}

// Open opens the single database file holding the HR schema and
// verifies the connection. Foreign-key enforcement is switched on for
// every connection; the pool is capped at one open connection to match
// the single-writer execution model.
//
// The returned handle must be passed explicitly and closed by the
// caller. There is no package-level singleton.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := sql.Open("sqlite", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}

	// A single connection keeps the in-memory database coherent and
	// serializes writers on file-backed databases.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Path, err)
	}

	return db, nil
}

func dsn(cfg Config) string {
	params := []string{
		"_pragma=foreign_keys(1)",
	}
	if cfg.BusyTimeout > 0 {
		params = append(params, fmt.Sprintf("_pragma=busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	}
	if cfg.ReadOnly {
		params = append(params, "mode=ro")
	}

	return "file:" + cfg.Path + "?" + strings.Join(params, "&")
}
