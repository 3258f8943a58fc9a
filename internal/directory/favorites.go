package directory

import (
	"context"
	"time"

	"github.com/jfmyers9/radionet/internal/cache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	// FavoritesTTL is how long the resolved favorites list stays cached.
	FavoritesTTL = 1440 * time.Minute

	favoritesKey = "favorites"
)

// FavoritesResolver turns favorite identifiers into playable stations.
type FavoritesResolver struct {
	lookup  *Lookup
	search  *SearchEngine
	cache   *cache.Store
	workers int
	logger  zerolog.Logger
}

// NewFavoritesResolver creates a FavoritesResolver that resolves up to
// workers identifiers at a time.
func NewFavoritesResolver(lookup *Lookup, search *SearchEngine, store *cache.Store, workers int, logger zerolog.Logger) *FavoritesResolver {
	if workers < 1 {
		workers = 1
	}
	return &FavoritesResolver{
		lookup:  lookup,
		search:  search,
		cache:   store,
		workers: workers,
		logger:  logger.With().Str("component", "favorites").Logger(),
	}
}

// Resolve returns the playable stations for ids, in the order of ids.
//
// Each id is looked up directly; when that fails a one-result search for
// the id is tried instead. Ids that resolve to nothing are skipped. The
// result is cached as a whole. A done ctx is reported as ErrUnavailable
// and leaves the cache untouched.
func (f *FavoritesResolver) Resolve(ctx context.Context, ids []string) ([]*Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, classify(err)
	}

	stations, err := cache.Load(ctx, f.cache, favoritesKey, FavoritesTTL, func(ctx context.Context) ([]*Station, error) {
		resolved := make([]*Station, len(ids))

		var g errgroup.Group
		g.SetLimit(f.workers)
		for i, id := range ids {
			i, id := i, id
			g.Go(func() error {
				resolved[i] = f.resolveOne(ctx, id)
				return nil
			})
		}
		_ = g.Wait()

		stations := make([]*Station, 0, len(ids))
		for _, station := range resolved {
			if station != nil && station.Playable {
				stations = append(stations, station)
			}
		}

		f.logger.Info().Int("count", len(stations)).Msg("Loaded favorite stations")
		return stations, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return stations, nil
}

// Invalidate drops the cached favorites list.
func (f *FavoritesResolver) Invalidate() {
	f.cache.Delete(favoritesKey)
}

func (f *FavoritesResolver) resolveOne(ctx context.Context, id string) *Station {
	station, err := f.lookup.ByIDOrSlug(ctx, id)
	if err == nil {
		return station
	}

	f.logger.Debug().Err(err).Str("favorite", id).Msg("Direct lookup failed, searching")

	station, err = f.search.First(ctx, id)
	if err != nil {
		f.logger.Warn().Str("favorite", id).Msg("No results for favorite")
		return nil
	}
	return station
}
