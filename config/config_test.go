package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"DB_TYPE", "DATABASE_URL", "SQLITE_PATH", "PORT", "LOG_LEVEL", "LOG_FORMAT",
	"REDACT_PASSWORD_HASH", "DB_MAX_IDLE_CONNS", "DB_MAX_OPEN_CONNS",
	"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME", "DB_SLOW_THRESHOLD",
}

// clearEnv unsets every key Load reads; previous values are restored after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://postgres@localhost:5432/plantdoc_db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBType)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RedactPasswordHash)
	assert.Equal(t, 5, cfg.Pool.MaxIdleConns)
	assert.Equal(t, 10, cfg.Pool.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.Pool.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.Pool.ConnMaxIdleTime)
	assert.Equal(t, 200*time.Millisecond, cfg.SlowQueryThreshold)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_TYPE", "oracle")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestLoadMissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_TYPE", "sqlite")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBType)
	assert.Equal(t, "plantdoc.db", cfg.SQLitePath)
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := "DB_TYPE=sqlite\nSQLITE_PATH=/tmp/plants.db\nPORT=8081\nREDACT_PASSWORD_HASH=true\nDB_SLOW_THRESHOLD=1s\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBType)
	assert.Equal(t, "/tmp/plants.db", cfg.SQLitePath)
	assert.Equal(t, ":8081", cfg.Addr())
	assert.True(t, cfg.RedactPasswordHash)
	assert.Equal(t, time.Second, cfg.SlowQueryThreshold)
}

func TestEnvironmentWinsOverEnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_TYPE=sqlite\nPORT=8081\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}

func TestPostgresqlAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_TYPE", "PostgreSQL")
	t.Setenv("DATABASE_URL", "postgres://localhost/plantdoc_db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DBType)
}
