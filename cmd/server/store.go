package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/maxviazov/mods-catalog-service/internal/config"
	"github.com/maxviazov/mods-catalog-service/internal/repository"
	"github.com/maxviazov/mods-catalog-service/internal/repository/postgres"
	"github.com/maxviazov/mods-catalog-service/internal/repository/sqlite"
	"github.com/maxviazov/mods-catalog-service/migrations"
	"github.com/rs/zerolog"
)

// openStore picks the backend from the URL scheme and, when configured,
// applies the embedded schema before the first request.
func openStore(ctx context.Context, cfg *config.DatabaseConfig, logger *zerolog.Logger) (repository.Store, error) {
	scheme, err := dsnScheme(cfg.URL)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case "postgres", "postgresql":
		repo, err := repository.New(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			// connections borrowed by this handle go back to the pool, so it is not closed
			db := stdlib.OpenDBFromPool(repo.Pool())
			if err := migrations.Up(ctx, db, migrations.Postgres); err != nil {
				repo.Close()
				return nil, err
			}
			logger.Info().Msg("Postgres schema is up to date")
		}
		return postgres.NewStore(repo), nil

	case "sqlite", "file":
		db, err := sqlite.Open(ctx, cfg.URL)
		if err != nil {
			return nil, err
		}
		if cfg.AutoMigrate {
			if err := migrations.Up(ctx, db.SQL(), migrations.SQLite); err != nil {
				db.Close()
				return nil, err
			}
			logger.Info().Msg("SQLite schema is up to date")
		}
		logger.Info().Str("dsn", cfg.URL).Msg("Successfully opened SQLite catalog")
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database url scheme %q", scheme)
	}
}

// dsnScheme returns the lowercased URL scheme. libpq keyword strings
// ("host=... dbname=...") have none and are reported as postgres.
func dsnScheme(dsn string) (string, error) {
	if isKeywordDSN(dsn) {
		return "postgres", nil
	}
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid database url: %w", err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("database url %q has no scheme", dsn)
	}
	return strings.ToLower(u.Scheme), nil
}

// isKeywordDSN reports whether dsn starts with a key=value pair rather than scheme:.
func isKeywordDSN(dsn string) bool {
	eq := strings.IndexByte(dsn, '=')
	if eq <= 0 {
		return false
	}
	colon := strings.IndexByte(dsn, ':')
	return colon < 0 || colon > eq
}
