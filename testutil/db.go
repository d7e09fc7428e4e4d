// Package testutil opens throwaway SQLite stores for package tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/krishkalaria12/plantdoc-serve/config"
	"github.com/krishkalaria12/plantdoc-serve/database"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// SQLiteConfig points at a fresh database file inside t.TempDir().
func SQLiteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DBType:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "plantdoc_test.db"),
		Port:       "0",
		Pool: config.PoolConfig{
			MaxIdleConns:    1,
			MaxOpenConns:    1,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: time.Hour,
		},
	}
}

// NewDB opens and migrates a temporary SQLite store, closed when the test ends.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(SQLiteConfig(t), zerolog.Nop())
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.MigrateModels(db), "failed to migrate test database")

	t.Cleanup(func() {
		assert.NoError(t, database.CloseDB(db), "failed to close test database")
	})

	return db
}
