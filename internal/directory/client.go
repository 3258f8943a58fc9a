package directory

import (
	"context"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/jfmyers9/radionet/internal/cache"
	"github.com/jfmyers9/radionet/pkg/radionet"
	"github.com/rs/zerolog"
)

// DefaultMinBitrate is the lowest stream bitrate, in kbps, preferred by default.
const DefaultMinBitrate = 96

// DefaultFavoriteWorkers is how many favorites are resolved concurrently.
const DefaultFavoriteWorkers = 4

// Config holds directory client configuration.
type Config struct {
	Region          string        // Region code, e.g. "de" (defaults to radionet.DefaultRegion)
	MinBitrate      int           // Preferred minimum stream bitrate in kbps (defaults to 96)
	APIKey          string        // Reserved, not used by current endpoints
	Favorites       []string      // Favorite station ids or slugs
	FavoriteWorkers int           // Concurrent favorite lookups (defaults to 4)
	BaseURL         string        // API base URL (defaults to radionet.DefaultBaseURL)
	UserAgent       string        // user-agent header (defaults to radionet.DefaultUserAgent)
	HTTPTimeout     time.Duration // Per-request timeout (defaults to radionet.DefaultTimeout)
	MaxRetries      int           // Attempts per request (defaults to 1)
	Clock           cache.Clock   // Time source for cache expiry (defaults to time.Now)
}

// Client is the entry point to the radio directory. It owns its cache,
// station registry and favorites; nothing is shared between Clients.
//
// No method returns an error. Failures surface as a Result status and are
// logged.
type Client struct {
	api      API
	cache    *cache.Store
	registry *Registry
	lookup   *Lookup
	browser  *Browser
	search   *SearchEngine
	favs     *FavoritesResolver
	logger   zerolog.Logger

	mu         sync.RWMutex
	region     string
	locale     string
	minBitrate int
	apiKey     string
	favorites  []string
}

// New creates a Client talking to the radio.net API.
func New(cfg Config, logger zerolog.Logger) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = radionet.DefaultTimeout
	}

	sdk := radionet.NewClient(radionet.Config{
		UserAgent:  cfg.UserAgent,
		APIKey:     cfg.APIKey,
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    cfg.BaseURL,
		MaxRetries: cfg.MaxRetries,
		Logger:     zerologAdapter{logger: logger.With().Str("component", "radionet").Logger()},
	})

	return NewWithAPI(cfg, sdkAPI{client: sdk}, logger)
}

// NewWithAPI creates a Client on top of an existing API implementation.
func NewWithAPI(cfg Config, api API, logger zerolog.Logger) *Client {
	minBitrate := cfg.MinBitrate
	if minBitrate <= 0 {
		minBitrate = DefaultMinBitrate
	}

	workers := cfg.FavoriteWorkers
	if workers <= 0 {
		workers = DefaultFavoriteWorkers
	}

	c := &Client{
		api:        api,
		cache:      cache.New(cache.WithClock(cfg.Clock)),
		registry:   NewRegistry(),
		logger:     logger.With().Str("component", "directory").Logger(),
		region:     radionet.DefaultRegion,
		locale:     radionet.DefaultLocale(),
		minBitrate: minBitrate,
		apiKey:     cfg.APIKey,
		favorites:  slices.Clone(cfg.Favorites),
	}

	c.lookup = NewLookup(api, c.cache, c.registry, c.MinBitrate, logger)
	c.browser = NewBrowser(api, c.cache, c.registry, c.MinBitrate, logger)
	c.search = NewSearchEngine(api, c.registry, c.MinBitrate, logger)
	c.favs = NewFavoritesResolver(c.lookup, c.search, c.cache, workers, logger)

	api.SetLanguage(c.locale)
	if cfg.Region != "" {
		c.SetRegion(cfg.Region)
	}

	return c
}

// SetRegion switches the region, and with it the accept-language sent to
// the API. region is a code such as "de" or a locale tag such as "de-AT".
// Unknown regions are logged and leave the current region as is.
func (c *Client) SetRegion(region string) {
	code, ok := radionet.ResolveRegion(region)
	if !ok {
		c.logger.Warn().
			Str("region", region).
			Str("locale", c.Locale()).
			Msg("Unsupported region, keeping current locale")
		return
	}
	locale, _ := radionet.LocaleFor(code)

	c.mu.Lock()
	c.region = code
	c.locale = locale
	c.mu.Unlock()

	c.api.SetLanguage(locale)
	c.logger.Debug().Str("region", code).Str("locale", locale).Msg("Region set")
}

// SetLanguage is SetRegion under the name the directory uses for it.
func (c *Client) SetLanguage(region string) {
	c.SetRegion(region)
}

// Region returns the current region code.
func (c *Client) Region() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.region
}

// Locale returns the accept-language of the current region.
func (c *Client) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

// MinBitrate returns the preferred minimum stream bitrate in kbps.
func (c *Client) MinBitrate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.minBitrate
}

// SetMinBitrate changes the preferred minimum bitrate for stations
// normalized from now on. Non-positive values are ignored.
func (c *Client) SetMinBitrate(kbps int) {
	if kbps <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minBitrate = kbps
}

// APIKey returns the configured API key placeholder.
func (c *Client) APIKey() string {
	return c.apiKey
}

// SetFavorites replaces the favorite identifiers. A changed list drops the
// cached favorites.
func (c *Client) SetFavorites(ids []string) {
	c.mu.Lock()
	changed := !slices.Equal(c.favorites, ids)
	c.favorites = slices.Clone(ids)
	c.mu.Unlock()

	if changed {
		c.favs.Invalidate()
	}
}

// Favorites returns a copy of the favorite identifiers.
func (c *Client) Favorites() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.favorites)
}

// StationByID returns the station with id.
func (c *Client) StationByID(ctx context.Context, id string) Result[*Station] {
	return resultOf(c.lookup.ByID(ctx, id))
}

// StationBySlug returns the station with slug.
func (c *Client) StationBySlug(ctx context.Context, slug string) Result[*Station] {
	return resultOf(c.lookup.BySlug(ctx, slug))
}

// StreamURL returns the stream to play for a station. Stations known only
// from records without streams get their details looked up, through the
// station cache, to fill it in.
func (c *Client) StreamURL(ctx context.Context, id string) Result[string] {
	station, err := c.lookup.ByID(ctx, id)
	if err != nil {
		return resultOf("", err)
	}

	if station.StreamURL == "" {
		station, err = c.lookup.Details(ctx, station.ID)
		if err != nil {
			return resultOf("", err)
		}
	}

	if station.StreamURL == "" {
		c.logger.Warn().Str("station", id).Msg("Station has no stream")
		return Result[string]{Status: StatusNotFound}
	}

	return Result[string]{Value: station.StreamURL, Status: StatusOK}
}

// ListCategory returns one page of stations for a tag, e.g. ("genres", "rock", 1).
func (c *Client) ListCategory(ctx context.Context, tagType, slug string, page int) Result[[]*Station] {
	return resultOf(c.browser.ListCategory(ctx, tagType, slug, page))
}

// ListSimpleCategory returns one page of a simple category, e.g. ("local", 1).
func (c *Client) ListSimpleCategory(ctx context.Context, category string, page int) Result[[]*Station] {
	return resultOf(c.browser.ListSimpleCategory(ctx, category, page))
}

// CategoryPageCount returns the number of pages of a tag category.
func (c *Client) CategoryPageCount(ctx context.Context, tagType, slug string) Result[int] {
	return resultOf(c.browser.CategoryPageCount(ctx, tagType, slug))
}

// SimpleCategoryPageCount returns the number of pages of a simple category.
func (c *Client) SimpleCategoryPageCount(ctx context.Context, category string) Result[int] {
	return resultOf(c.browser.SimpleCategoryPageCount(ctx, category))
}

// ListTagValues returns the values of a tag dimension having at least
// minCount stations.
func (c *Client) ListTagValues(ctx context.Context, tagType string, minCount int) Result[[]radionet.Tag] {
	return resultOf(c.browser.ListTagValues(ctx, tagType, minCount))
}

// Genres returns every genre.
func (c *Client) Genres(ctx context.Context) Result[[]radionet.Tag] {
	return c.ListTagValues(ctx, "genres", 0)
}

// Topics returns every topic.
func (c *Client) Topics(ctx context.Context) Result[[]radionet.Tag] {
	return c.ListTagValues(ctx, "topics", 0)
}

// Languages returns every language.
func (c *Client) Languages(ctx context.Context) Result[[]radionet.Tag] {
	return c.ListTagValues(ctx, "languages", 0)
}

// Cities returns every city.
func (c *Client) Cities(ctx context.Context) Result[[]radionet.Tag] {
	return c.ListTagValues(ctx, "cities", 0)
}

// Countries returns every country.
func (c *Client) Countries(ctx context.Context) Result[[]radionet.Tag] {
	return c.ListTagValues(ctx, "countries", 0)
}

// Search returns the playable stations matching query across at most
// MaxSearchPages pages.
func (c *Client) Search(ctx context.Context, query string) Result[[]*Station] {
	return resultOf(c.search.Search(ctx, query, 1))
}

// ResolveFavorites returns the playable stations for the favorite
// identifiers, in their configured order.
func (c *Client) ResolveFavorites(ctx context.Context) Result[[]*Station] {
	return resultOf(c.favs.Resolve(ctx, c.Favorites()))
}
