package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
)

// migrationsRelPath is the migrations directory relative to the project
// root.
var migrationsRelPath = filepath.Join("internal", "platform", "postgres", "migrations")

// slogGooseLogger forwards goose output to slog.
type slogGooseLogger struct{}

// Printf implements the goose.Logger Printf method by forwarding messages
// to slog.Info
func (slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error
// messages to slog.Error before exiting
func (slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}

// runMigrations executes the given migration command (up, down, status)
// against the connected database.
func runMigrations(db *sql.DB, command string, logger *slog.Logger) error {
	goose.SetLogger(&slogGooseLogger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}

	logger.Info("Executing migrations", "command", command, "dir", dir)

	switch command {
	case "up":
		err = goose.Up(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "status":
		err = goose.Status(db, dir)
	default:
		return fmt.Errorf("unknown migration command %q (want up, down, or status)", command)
	}

	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	return nil
}

// findMigrationsDir locates the migrations directory relative to the
// project root by walking up from the working directory until a go.mod is
// found.
func findMigrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			migrationsPath := filepath.Join(dir, migrationsRelPath)
			if _, err := os.Stat(migrationsPath); err != nil {
				return "", fmt.Errorf("migrations directory not found at %s", migrationsPath)
			}
			return migrationsPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("project root not found above working directory")
		}
		dir = parent
	}
}
