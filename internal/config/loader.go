package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads the YAML file at path and applies APP_* environment overrides.
// The file is optional when the environment carries everything required;
// a missing database URL is always fatal.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	setDefaults(v)
	// The bare DATABASE_URL is what most deploy tooling exports.
	if err := v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	inheritLoggerSettings(&config)
	return &config, nil
}

// inheritLoggerSettings fills logger identity from the app section unless the
// logger block sets it. The logger knows no "test" env, so that one is left to its default.
func inheritLoggerSettings(c *Config) {
	if c.Logger.Env == "" && c.App.Env != "test" {
		c.Logger.Env = c.App.Env
	}
	if c.Logger.ServiceName == "" {
		c.Logger.ServiceName = c.App.Name
	}
	if c.Logger.ServiceVersion == "" {
		c.Logger.ServiceVersion = c.App.Version
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "mods-catalog-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 3000)
	v.SetDefault("app.read_timeout", 10)
	v.SetDefault("app.write_timeout", 15)
	v.SetDefault("app.shutdown_timeout", 10)

	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.max_conn_lifetime", 3600)
	v.SetDefault("database.max_conn_idle_time", 300)
	v.SetDefault("database.health_check_period", 30)
	v.SetDefault("database.auto_migrate", false)
}
