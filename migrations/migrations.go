// Package migrations embeds the mods table schema for every supported backend
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect names a schema directory and the matching goose dialect.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// goose keeps its base FS and dialect in package globals.
var mu sync.Mutex

// Up applies every pending migration for the dialect.
func Up(ctx context.Context, db *sql.DB, d Dialect) error {
	mu.Lock()
	defer mu.Unlock()

	gooseDialect, err := d.goose()
	if err != nil {
		return err
	}
	goose.SetBaseFS(files)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("set goose dialect %q: %w", gooseDialect, err)
	}
	if err := goose.UpContext(ctx, db, string(d)); err != nil {
		return fmt.Errorf("apply %s migrations: %w", d, err)
	}
	return nil
}

func (d Dialect) goose() (string, error) {
	switch d {
	case Postgres:
		return "postgres", nil
	case SQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unknown migration dialect %q", string(d))
	}
}
