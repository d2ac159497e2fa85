package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/mods-catalog-service/internal/model"
	"github.com/maxviazov/mods-catalog-service/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// modService holds listing logic: page validation, window math and envelope assembly.
type modService struct {
	repo repository.ModRepository
	log  zerolog.Logger
}

func NewModService(repo repository.ModRepository, logger zerolog.Logger) ModService {
	l := logger.With().Str("module", "service").Str("component", "mods").Logger()
	return &modService{repo: repo, log: l}
}

// ListMods runs the count and the window fetch concurrently; they share no data,
// and a failure in either cancels the other. There is no partial result.
func (s *modService) ListMods(ctx context.Context, page int) (model.ModPage, error) {
	start := time.Now()
	if err := validatePage(page, repository.ModsPageLimit); err != nil {
		s.log.Debug().Int("page", page).Interface("field_errors", FieldErrors(err)).Msg("page validation failed")
		return model.ModPage{}, err
	}
	p := repository.PageFor(page, repository.ModsPageLimit)

	var res repository.PageResult[model.Mod]
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.Count(gctx)
		if err != nil {
			return err
		}
		res.Total = n
		return nil
	})
	g.Go(func() error {
		items, err := s.repo.ListByDownloads(gctx, p)
		if err != nil {
			return err
		}
		res.Items = items
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logFailure(err, page, p)
		return model.ModPage{}, err
	}

	out := newModPage(res, p.Limit)
	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("page", page).
		Int("returned", len(out.Mods)).
		Int("total_rows", out.Pagination.TotalRows).
		Msg("mods listed")
	return out, nil
}

// newModPage turns a fetched window into the response envelope.
// A window past the last row still renders as an empty list, never null.
func newModPage(res repository.PageResult[model.Mod], limit int) model.ModPage {
	mods := res.Items
	if mods == nil {
		mods = []model.Mod{}
	}
	return model.ModPage{
		Pagination: model.Pagination{
			Limit:     limit,
			TotalRows: res.Total,
			Pages:     repository.TotalPages(res.Total, limit),
		},
		Mods: mods,
	}
}

// logFailure keeps client disconnects out of the error stream; repository
// errors arrive classified already and are not wrapped again.
func (s *modService) logFailure(err error, page int, p repository.Page) {
	level := zerolog.ErrorLevel
	if errors.Is(err, context.Canceled) {
		level = zerolog.WarnLevel
	}
	s.log.WithLevel(level).Err(err).Int("page", page).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list mods failed")
}
