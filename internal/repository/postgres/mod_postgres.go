package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/mods-catalog-service/internal/model"
	"github.com/maxviazov/mods-catalog-service/internal/repository"
)

const (
	countModsSQL = `SELECT COUNT(*) FROM mods`

	// id breaks ties between equal download counts so pages never overlap.
	listModsByDownloadsSQL = `SELECT id, title, icon, author, author_link, description, tags,
		        mod_link, download_link, rating, reviews, downloads, last_updated
		 FROM mods
		 ORDER BY downloads DESC, id ASC
		 LIMIT $1 OFFSET $2`
)

type modRepository struct{ pool *pgxpool.Pool }

func NewModRepository(pool *pgxpool.Pool) repository.ModRepository {
	return &modRepository{pool: pool}
}

func (r *modRepository) Count(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var total int
	if err := r.pool.QueryRow(ctx, countModsSQL).Scan(&total); err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}

func (r *modRepository) ListByDownloads(ctx context.Context, p repository.Page) ([]model.Mod, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, listModsByDownloadsSQL, p.Limit, p.Offset)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Mod, 0, p.Limit)
	for rows.Next() {
		m, err := scanMod(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

func scanMod(row pgx.Row) (model.Mod, error) {
	var (
		m    model.Mod
		tags *string
	)
	err := row.Scan(
		&m.ID,
		&m.Title,
		&m.Icon,
		&m.Author,
		&m.AuthorLink,
		&m.Description,
		&tags,
		&m.ModLink,
		&m.DownloadLink,
		&m.Rating,
		&m.Reviews,
		&m.Downloads,
		&m.LastUpdated,
	)
	if err != nil {
		return model.Mod{}, err
	}
	m.Tags = model.NewTags(tags)
	return m, nil
}

var _ repository.ModRepository = (*modRepository)(nil)
