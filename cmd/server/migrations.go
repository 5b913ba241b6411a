package main

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the directory holding the goose SQL migrations,
// relative to the server's working directory.
const migrationsDir = "migrations"

// runMigrations applies any pending database migrations.
func (app *application) runMigrations() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(app.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app.logger.Info("database migrations applied")
	return nil
}
