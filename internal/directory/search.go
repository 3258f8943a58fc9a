package directory

import (
	"context"

	"github.com/rs/zerolog"
)

// MaxSearchPages caps how deep a search pages. Upstream ranking is
// unusable beyond it.
const MaxSearchPages = 10

// SearchEngine aggregates free-text search results across pages.
// Results are never cached.
type SearchEngine struct {
	api        API
	registry   *Registry
	minBitrate func() int
	logger     zerolog.Logger
}

// NewSearchEngine creates a SearchEngine.
func NewSearchEngine(api API, registry *Registry, minBitrate func() int, logger zerolog.Logger) *SearchEngine {
	return &SearchEngine{
		api:        api,
		registry:   registry,
		minBitrate: minBitrate,
		logger:     logger.With().Str("component", "search").Logger(),
	}
}

// Search collects playable stations matching query, starting at page and
// continuing while more pages exist and the page cap is not reached.
//
// A failure on the first page is returned as an error. A failure on a later
// page ends the search with what was collected so far.
func (e *SearchEngine) Search(ctx context.Context, query string, page int) ([]*Station, error) {
	page = clampPage(page)
	results := []*Station{}

	for first := true; ; first = false {
		if err := ctx.Err(); err != nil {
			if first {
				return nil, classify(err)
			}
			e.logger.Warn().Err(err).Str("query", query).Int("page", page).Msg("Search cancelled")
			return results, nil
		}

		resp, err := e.api.Search(ctx, query, PageSize, offset(page))
		if err != nil {
			e.logger.Error().Err(err).Str("query", query).Int("page", page).Msg("Search error")
			if first {
				return nil, classify(err)
			}
			return results, nil
		}

		minBitrate := e.minBitrate()
		for _, raw := range resp.Playables {
			station := e.registry.Normalize(raw, minBitrate)
			if station.Playable {
				results = append(results, station)
			}
		}

		if pageCount(resp.TotalCount) > page && page < MaxSearchPages {
			page++
			continue
		}

		e.logger.Info().
			Str("query", query).
			Int("pages", page).
			Int("stations", len(results)).
			Msg("Search done")
		return results, nil
	}
}

// First returns the top search hit for query, or ErrNotFound when the
// search has no results.
func (e *SearchEngine) First(ctx context.Context, query string) (*Station, error) {
	resp, err := e.api.Search(ctx, query, 1, 0)
	if err != nil {
		e.logger.Error().Err(err).Str("query", query).Msg("Search error")
		return nil, classify(err)
	}

	if len(resp.Playables) == 0 {
		e.logger.Warn().Str("query", query).Msg("No results")
		return nil, ErrNotFound
	}

	return e.registry.Normalize(resp.Playables[0], e.minBitrate()), nil
}
