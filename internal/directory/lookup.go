package directory

import (
	"context"
	"time"

	"github.com/jfmyers9/radionet/internal/cache"
	"github.com/rs/zerolog"
)

// StationTTL is how long a fetched station detail stays cached.
const StationTTL = 1440 * time.Minute

// Lookup resolves single stations, registry first and remote second.
type Lookup struct {
	api        API
	cache      *cache.Store
	registry   *Registry
	minBitrate func() int
	logger     zerolog.Logger
}

// NewLookup creates a Lookup.
func NewLookup(api API, store *cache.Store, registry *Registry, minBitrate func() int, logger zerolog.Logger) *Lookup {
	return &Lookup{
		api:        api,
		cache:      store,
		registry:   registry,
		minBitrate: minBitrate,
		logger:     logger.With().Str("component", "lookup").Logger(),
	}
}

// ByID returns the station with id, fetching its details if it is unknown.
func (l *Lookup) ByID(ctx context.Context, id string) (*Station, error) {
	if station, ok := l.registry.ByID(id); ok {
		return station, nil
	}
	return l.details(ctx, id)
}

// BySlug returns the station with slug, fetching its details if it is unknown.
func (l *Lookup) BySlug(ctx context.Context, slug string) (*Station, error) {
	if station, ok := l.registry.BySlug(slug); ok {
		return station, nil
	}
	return l.details(ctx, slug)
}

// details is the cached remote station lookup.
func (l *Lookup) details(ctx context.Context, idOrSlug string) (*Station, error) {
	return cache.Load(ctx, l.cache, stationKey(idOrSlug), StationTTL, l.fetch(idOrSlug))
}

// ByIDOrSlug returns the station known under key as either id or slug,
// fetching its details if neither index has it.
func (l *Lookup) ByIDOrSlug(ctx context.Context, key string) (*Station, error) {
	if station, ok := l.registry.ByID(key); ok {
		return station, nil
	}
	if station, ok := l.registry.BySlug(key); ok {
		return station, nil
	}
	return l.details(ctx, key)
}

// Details returns the station details for idOrSlug, from the cache when
// fresh and remotely otherwise. The registry is not consulted.
func (l *Lookup) Details(ctx context.Context, idOrSlug string) (*Station, error) {
	return l.details(ctx, idOrSlug)
}

func (l *Lookup) fetch(idOrSlug string) func(context.Context) (*Station, error) {
	return func(ctx context.Context) (*Station, error) {
		raw, err := l.api.Details(ctx, idOrSlug)
		if err != nil {
			l.logger.Error().Err(err).Str("station", idOrSlug).Msg("Error on get station by id")
			return nil, classify(err)
		}

		l.logger.Debug().Str("station", idOrSlug).Msg("Fetched station details")
		return l.registry.Normalize(*raw, l.minBitrate()), nil
	}
}

func stationKey(idOrSlug string) string {
	return "station/" + idOrSlug
}
