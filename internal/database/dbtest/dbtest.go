// Package dbtest opens throwaway SQLite databases for package tests.
package dbtest

import (
	"path/filepath"
	"testing"
	"time"

	"translation-backend/internal/config"
	"translation-backend/internal/database"

	"github.com/stretchr/testify/require"
)

// New returns a migrated database backed by a file in t.TempDir.
func New(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "app.db"),
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() { _ = db.Close() })
	return db
}
