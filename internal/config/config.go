package config

import (
	"github.com/maxviazov/mods-catalog-service/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Database DatabaseConfig      `mapstructure:"database"`
}

// AppConfig holds HTTP server settings. Timeouts are in seconds.
type AppConfig struct {
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     int    `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    int    `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"min=0"`
}

// DatabaseConfig describes the catalog store.
// URL selects the backend by scheme: postgres://, postgresql:// and libpq keyword
// strings (host=... dbname=...) use a pgx pool,
// sqlite:// and file: open an embedded SQLite database.
type DatabaseConfig struct {
	URL               string `mapstructure:"url" validate:"required"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime" validate:"min=0"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time" validate:"min=0"`
	HealthCheckPeriod int    `mapstructure:"health_check_period" validate:"min=0"`
	AutoMigrate       bool   `mapstructure:"auto_migrate"`
}
