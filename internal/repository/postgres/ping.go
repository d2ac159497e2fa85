package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/mods-catalog-service/internal/repository"
)

type pinger struct{ pool *pgxpool.Pool }

// NewPinger adapts pgxpool to the repository.Pinger interface.
func NewPinger(pool *pgxpool.Pool) repository.Pinger { return &pinger{pool: pool} }

func (p *pinger) Ping(ctx context.Context) error {
	if err := ensurePool(p.pool); err != nil {
		return err
	}
	return repository.MapPgError(p.pool.Ping(ctx))
}

// Store bundles the pool-backed repository and pinger behind repository.Store.
type Store struct {
	repository.ModRepository
	repository.Pinger
	owner *repository.Repository
}

// NewStore wraps a connected repository.Repository; Close releases its pool.
func NewStore(r *repository.Repository) *Store {
	return &Store{
		ModRepository: NewModRepository(r.Pool()),
		Pinger:        NewPinger(r.Pool()),
		owner:         r,
	}
}

func (s *Store) Close() { s.owner.Close() }

// ensurePool guards against a zero-value repository reaching the driver.
func ensurePool(pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("pgx pool is nil")
	}
	return nil
}

var _ repository.Store = (*Store)(nil)
