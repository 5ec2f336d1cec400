package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/yamato-dev/kotoba-api/internal/config"
	"github.com/yamato-dev/kotoba-api/internal/platform/logger"
	"github.com/yamato-dev/kotoba-api/internal/platform/postgres"
	"github.com/yamato-dev/kotoba-api/internal/store"
)

// application holds the fully wired dependencies of the server process.
// Everything is constructed once in newApplication and passed down
// explicitly; there is no ambient global state beyond slog's default
// logger.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore       store.UserStore
	postStore       store.PostStore
	vocabularyStore store.VocabularyStore
}

// newApplication loads configuration and sets up all application
// components: logging, the database pool, schema migrations, and the
// stores. Migration failure is fatal: the HTTP listener must never
// serve traffic against an unmigrated schema.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	app := &application{
		config:          cfg,
		logger:          log,
		db:              db,
		userStore:       postgres.NewUserStore(db, log),
		postStore:       postgres.NewPostStore(db, log),
		vocabularyStore: postgres.NewVocabularyStore(db, log),
	}

	return app, nil
}

// cleanup releases resources held by the application. Called once on
// shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
