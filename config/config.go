package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBType      string
	DatabaseURL string
	SQLitePath  string

	Port      string
	LogLevel  string
	LogFormat string

	// RedactPasswordHash drops the password hash from account payloads.
	// Off by default: account responses carry the hash verbatim.
	RedactPasswordHash bool

	Pool               PoolConfig
	SlowQueryThreshold time.Duration
}

type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_type", DriverPostgres)
	v.SetDefault("sqlite_path", "plantdoc.db")
	v.SetDefault("port", "3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("redact_password_hash", false)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_conn_max_lifetime", time.Hour)
	v.SetDefault("db_conn_max_idle_time", 30*time.Minute)
	v.SetDefault("db_slow_threshold", 200*time.Millisecond)
}

// Load reads envFile into the process environment when it exists and then
// resolves every setting from the environment, falling back to defaults.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		DBType:             strings.ToLower(strings.TrimSpace(v.GetString("db_type"))),
		DatabaseURL:        v.GetString("database_url"),
		SQLitePath:         v.GetString("sqlite_path"),
		Port:               v.GetString("port"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
		RedactPasswordHash: v.GetBool("redact_password_hash"),
		Pool: PoolConfig{
			MaxIdleConns:    v.GetInt("db_max_idle_conns"),
			MaxOpenConns:    v.GetInt("db_max_open_conns"),
			ConnMaxLifetime: v.GetDuration("db_conn_max_lifetime"),
			ConnMaxIdleTime: v.GetDuration("db_conn_max_idle_time"),
		},
		SlowQueryThreshold: v.GetDuration("db_slow_threshold"),
	}

	if cfg.DBType == "postgresql" {
		cfg.DBType = DriverPostgres
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBType {
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL not set (required for DB_TYPE=%s)", c.DBType)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH not set")
		}
	default:
		return fmt.Errorf("unsupported DB_TYPE %q", c.DBType)
	}

	if c.Port == "" {
		return errors.New("PORT not set")
	}

	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
