package repository

import (
	"context"

	"github.com/maxviazov/mods-catalog-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ModRepository declares read-only access to the mods catalog.
// Rows are owned by the ingestion process; nothing here mutates them.
type ModRepository interface {
	// Count returns the number of rows in the catalog.
	Count(ctx context.Context) (int, error)
	// ListByDownloads returns one window ordered by downloads descending, id ascending.
	// A window past the last row yields an empty, non-nil slice.
	ListByDownloads(ctx context.Context, p Page) ([]model.Mod, error)
}

// Store is a backend that can serve listings, answer readiness probes and be closed.
type Store interface {
	ModRepository
	Pinger
	Close()
}
