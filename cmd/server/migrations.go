package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/yamato-dev/kotoba-api/migrations"
)

// slogGooseLogger adapts goose's logger interface to slog so migration
// output lands in the same structured stream as everything else.
type slogGooseLogger struct {
	log *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "goose")
	os.Exit(1)
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "source", "goose")
}

// runMigrations applies the embedded goose migrations synchronously.
// The schema is written with IF NOT EXISTS guards and goose itself
// tracks applied versions, so repeated startups are idempotent.
func runMigrations(db *sql.DB, log *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&slogGooseLogger{log: log})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}
