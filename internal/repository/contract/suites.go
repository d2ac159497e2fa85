// Package contract holds backend-agnostic behaviour suites every
// repository.ModRepository implementation must pass.
package contract

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/maxviazov/mods-catalog-service/internal/model"
	"github.com/maxviazov/mods-catalog-service/internal/repository"
)

// SeedFunc inserts rows directly; the repository under test is read-only.
type SeedFunc func(ctx context.Context, mods ...model.Mod) error

// ModFactory returns a repository over an empty mods table plus a seeder for it.
type ModFactory func(t *testing.T) (repo repository.ModRepository, seed SeedFunc, cleanup func())

// NewMod builds a minimal valid row.
func NewMod(id, downloads int64) model.Mod {
	return model.Mod{
		ID:        id,
		Title:     "Mod " + strconv.FormatInt(id, 10),
		Author:    "Unknown",
		ModLink:   "https://www.beamng.com/resources/mod." + strconv.FormatInt(id, 10) + "/",
		Rating:    4.5,
		Reviews:   id,
		Downloads: downloads,
	}
}

func RunModRepositoryContract(t *testing.T, makeRepo ModFactory) {
	t.Helper()

	t.Run("empty_table", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		n, err := repo.Count(ctx)
		if err != nil || n != 0 {
			t.Fatalf("count: n=%d err=%v", n, err)
		}
		items, err := repo.ListByDownloads(ctx, repository.Page{Limit: repository.ModsPageLimit, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", items)
		}
	})

	t.Run("order_downloads_desc_id_asc", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if err := seed(ctx, NewMod(1, 10), NewMod(2, 30), NewMod(3, 30), NewMod(4, 5), NewMod(5, 20)); err != nil {
			t.Fatalf("seed: %v", err)
		}

		items, err := repo.ListByDownloads(ctx, repository.Page{Limit: 50, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		want := []int64{2, 3, 5, 1, 4}
		if len(items) != len(want) {
			t.Fatalf("expected %d items, got %d", len(want), len(items))
		}
		for i, id := range want {
			if items[i].ID != id {
				t.Fatalf("position %d: want id %d got %d (%+v)", i, id, items[i].ID, ids(items))
			}
		}
	})

	t.Run("windows_over_75_rows", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		rows := make([]model.Mod, 0, 75)
		for id := int64(1); id <= 75; id++ {
			rows = append(rows, NewMod(id, id*10))
		}
		if err := seed(ctx, rows...); err != nil {
			t.Fatalf("seed: %v", err)
		}

		n, err := repo.Count(ctx)
		if err != nil || n != 75 {
			t.Fatalf("count: n=%d err=%v", n, err)
		}

		first, err := repo.ListByDownloads(ctx, repository.PageFor(1, 50))
		if err != nil {
			t.Fatalf("page 1: %v", err)
		}
		if len(first) != 50 || first[0].ID != 75 || first[49].ID != 26 {
			t.Fatalf("page 1 window wrong: len=%d ids=%v", len(first), ids(first))
		}

		second, err := repo.ListByDownloads(ctx, repository.PageFor(2, 50))
		if err != nil {
			t.Fatalf("page 2: %v", err)
		}
		if len(second) != 25 || second[0].ID != 25 || second[24].ID != 1 {
			t.Fatalf("page 2 window wrong: len=%d ids=%v", len(second), ids(second))
		}
		for i := 1; i < len(second); i++ {
			if second[i-1].Downloads < second[i].Downloads {
				t.Fatalf("page 2 not descending at %d", i)
			}
		}

		third, err := repo.ListByDownloads(ctx, repository.PageFor(3, 50))
		if err != nil {
			t.Fatalf("page 3: %v", err)
		}
		if third == nil || len(third) != 0 {
			t.Fatalf("expected empty page 3, got %v", ids(third))
		}
	})

	t.Run("nullable_and_full_rows", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		updated := time.Date(2024, 10, 3, 12, 30, 0, 0, time.UTC)
		full := NewMod(100, 500)
		full.Icon = strPtr("https://www.beamng.com/data/resource_icons/100.jpg")
		full.AuthorLink = strPtr("https://www.beamng.com/resources/authors/someone.1/")
		full.Description = strPtr("A car")
		full.Tags = model.NewTags(strPtr(`["Vehicles","Cars"]`))
		full.DownloadLink = strPtr("https://www.beamng.com/resources/mod.100/download")
		full.LastUpdated = &updated
		bare := NewMod(101, 1)

		if err := seed(ctx, full, bare); err != nil {
			t.Fatalf("seed: %v", err)
		}
		items, err := repo.ListByDownloads(ctx, repository.Page{Limit: 50, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}

		got := items[0]
		if got.ID != 100 || got.Icon == nil || *got.Icon != *full.Icon ||
			got.AuthorLink == nil || got.Description == nil || got.DownloadLink == nil {
			t.Fatalf("full row mismatch: %+v", got)
		}
		if got.Tags == nil || string(*got.Tags) != `["Vehicles","Cars"]` {
			t.Fatalf("tags mismatch: %v", got.Tags)
		}
		if got.LastUpdated == nil || !got.LastUpdated.Equal(updated) {
			t.Fatalf("last_updated mismatch: %v", got.LastUpdated)
		}
		if got.Rating != full.Rating || got.Reviews != full.Reviews || got.ModLink != full.ModLink {
			t.Fatalf("scalar mismatch: %+v", got)
		}

		nb := items[1]
		if nb.ID != 101 || nb.Icon != nil || nb.AuthorLink != nil || nb.Description != nil ||
			nb.Tags != nil || nb.DownloadLink != nil || nb.LastUpdated != nil {
			t.Fatalf("bare row should keep NULLs: %+v", nb)
		}
	})

	t.Run("cancelled_context_fails", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := repo.Count(ctx); err == nil {
			t.Fatalf("expected error on cancelled context")
		}
	})
}

func ids(items []model.Mod) []int64 {
	out := make([]int64, 0, len(items))
	for _, m := range items {
		out = append(out, m.ID)
	}
	return out
}

func strPtr(s string) *string { return &s }
