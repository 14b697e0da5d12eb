package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFindMigrationsDir(t *testing.T) {
	dir, err := findMigrationsDir()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, migrationsRelPath))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestMigrationsAreWellFormed(t *testing.T) {
	dir, err := findMigrationsDir()
	require.NoError(t, err)

	migrations, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	seen := make(map[int64]bool)
	for _, m := range migrations {
		assert.False(t, seen[m.Version], "duplicate migration version %d", m.Version)
		seen[m.Version] = true
		assert.Equal(t, ".sql", filepath.Ext(m.Source))
	}
}

func TestMigrationsContainDownSections(t *testing.T) {
	dir, err := findMigrationsDir()
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- +goose Up", entry.Name())
		assert.Contains(t, string(content), "-- +goose Down", entry.Name())
	}
}

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	err := runMigrations(nil, "sideways", testAppLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}
