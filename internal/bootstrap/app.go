package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/locvowork/hr_sql_practice/internal/config"
	"github.com/locvowork/hr_sql_practice/internal/database"
	"github.com/locvowork/hr_sql_practice/internal/domain"
	"github.com/locvowork/hr_sql_practice/internal/logger"
	"github.com/locvowork/hr_sql_practice/internal/repository"
)

// Options override the environment configuration per command.
type Options struct {
	// DBPath overrides HR_DB_PATH when non-empty.
	DBPath string
	// ReadOnly opens the database read-only regardless of env config.
	ReadOnly bool
}

// App wires config, logging and the database handle for the CLIs.
type App struct {
	DB    *sql.DB
	Store domain.HRStore
}

func NewApp() *App {
	return &App{}
}

func (a *App) Initialize(ctx context.Context, opts Options) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	dbConfig := database.Config{
		Path:        config.DefaultEnvConfig.HR_DB_PATH,
		ReadOnly:    config.DefaultEnvConfig.HR_DB_READ_ONLY || opts.ReadOnly,
		BusyTimeout: config.DefaultEnvConfig.HR_DB_BUSY_TIMEOUT,
	}
	if opts.DBPath != "" {
		dbConfig.Path = opts.DBPath
	}

	db, err := database.Open(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db
	a.Store = repository.NewHRStore(db)

	logger.InfoLog(ctx, "Database opened at %s", dbConfig.Path)
	return nil
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
