package main

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/mods-catalog-service/internal/config"
	"github.com/maxviazov/mods-catalog-service/internal/service"
)

func TestDSNScheme(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/db": "postgres",
		"postgresql://localhost/db":        "postgresql",
		"sqlite:///var/lib/catalog.db":     "sqlite",
		"file:catalog.db?cache=shared":     "file",
		"POSTGRES://localhost/db":          "postgres",
	}
	for in, want := range cases {
		got, err := dsnScheme(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := dsnScheme("catalog.db")
	assert.Error(t, err)
}

func TestDSNScheme_KeywordStringsGoToPostgres(t *testing.T) {
	for _, dsn := range []string{
		"host=localhost user=mods dbname=beamng sslmode=disable",
		"dbname=beamng password=a:b@c host=/var/run/postgresql",
	} {
		got, err := dsnScheme(dsn)
		require.NoError(t, err, dsn)
		assert.Equal(t, "postgres", got, dsn)
	}
}

func TestOpenStore_RejectsUnknownScheme(t *testing.T) {
	logger := zerolog.New(io.Discard)
	_, err := openStore(context.Background(), &config.DatabaseConfig{URL: "mysql://root@localhost/beamng"}, &logger)
	assert.Error(t, err)
}

func TestOpenStore_SQLiteAutoMigrateServesListing(t *testing.T) {
	logger := zerolog.New(io.Discard)
	ctx := context.Background()
	cfg := &config.DatabaseConfig{
		URL:         "sqlite://" + filepath.Join(t.TempDir(), "catalog.db"),
		AutoMigrate: true,
	}

	store, err := openStore(ctx, cfg, &logger)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	require.NoError(t, store.Ping(ctx))
	page, err := service.NewModService(store, logger).ListMods(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Pagination.TotalRows)
	assert.Equal(t, 50, page.Pagination.Limit)
	assert.Empty(t, page.Mods)
}
