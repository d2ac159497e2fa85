// Package sqlite is the embedded catalog backend, used for single-node
// deployments and for running the repository contract suite without a server.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maxviazov/mods-catalog-service/internal/model"
	"github.com/maxviazov/mods-catalog-service/internal/repository"

	_ "modernc.org/sqlite"
)

const (
	countModsSQL = `SELECT COUNT(*) FROM mods`

	listModsByDownloadsSQL = `SELECT id, title, icon, author, author_link, description, tags,
		        mod_link, download_link, rating, reviews, downloads, last_updated
		 FROM mods
		 ORDER BY downloads DESC, id ASC
		 LIMIT ? OFFSET ?`
)

// DB is a database/sql handle over modernc.org/sqlite.
type DB struct {
	db *sql.DB
}

// Open accepts a filesystem path, a sqlite:// URL or a file: URI.
func Open(ctx context.Context, dsn string) (*DB, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	// readers never block each other under WAL; the ingestion writer lives elsewhere
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable sqlite wal: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite busy timeout: %w", err)
	}
	return &DB{db: db}, nil
}

// SQL exposes the handle for migrations.
func (s *DB) SQL() *sql.DB { return s.db }

func (s *DB) Close() { _ = s.db.Close() }

func (s *DB) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return nil
}

func (s *DB) Count(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, countModsSQL).Scan(&total); err != nil {
		return 0, fmt.Errorf("count mods: %w", mapSQLiteError(err))
	}
	return total, nil
}

func (s *DB) ListByDownloads(ctx context.Context, p repository.Page) ([]model.Mod, error) {
	rows, err := s.db.QueryContext(ctx, listModsByDownloadsSQL, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("list mods: %w", mapSQLiteError(err))
	}
	defer rows.Close()

	out := make([]model.Mod, 0, p.Limit)
	for rows.Next() {
		var (
			m           model.Mod
			icon        sql.NullString
			authorLink  sql.NullString
			description sql.NullString
			tags        sql.NullString
			download    sql.NullString
			lastUpdated sql.NullInt64
		)
		err := rows.Scan(
			&m.ID,
			&m.Title,
			&icon,
			&m.Author,
			&authorLink,
			&description,
			&tags,
			&m.ModLink,
			&download,
			&m.Rating,
			&m.Reviews,
			&m.Downloads,
			&lastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan mod: %w", mapSQLiteError(err))
		}
		m.Icon = nullString(icon)
		m.AuthorLink = nullString(authorLink)
		m.Description = nullString(description)
		m.Tags = model.NewTags(nullString(tags))
		m.DownloadLink = nullString(download)
		if lastUpdated.Valid {
			t := time.Unix(lastUpdated.Int64, 0).UTC()
			m.LastUpdated = &t
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mods: %w", mapSQLiteError(err))
	}
	return out, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

var _ repository.Store = (*DB)(nil)
