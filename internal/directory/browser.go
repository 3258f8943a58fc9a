package directory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jfmyers9/radionet/internal/cache"
	"github.com/jfmyers9/radionet/pkg/radionet"
	"github.com/rs/zerolog"
)

const (
	// PageSize is the number of stations requested per listing page.
	PageSize = 50

	// PageTTL is how long listing pages and page counts stay cached.
	PageTTL = 10 * time.Minute

	// TagTTL is how long tag value lists stay cached.
	TagTTL = 1440 * time.Minute
)

// tagParams maps tag types to their singular query parameter names.
var tagParams = map[string]string{
	"genres":    "genre",
	"topics":    "topic",
	"languages": "language",
	"cities":    "city",
	"countries": "country",
}

// TagParam returns the singular parameter name of a tag type and whether
// the tag type is known.
func TagParam(tagType string) (string, bool) {
	p, ok := tagParams[tagType]
	return p, ok
}

// TagTypes returns the known tag types in sorted order.
func TagTypes() []string {
	types := make([]string, 0, len(tagParams))
	for t := range tagParams {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Browser pages through tag categories and simple categories.
type Browser struct {
	api        API
	cache      *cache.Store
	registry   *Registry
	minBitrate func() int
	logger     zerolog.Logger
}

// NewBrowser creates a Browser.
func NewBrowser(api API, store *cache.Store, registry *Registry, minBitrate func() int, logger zerolog.Logger) *Browser {
	return &Browser{
		api:        api,
		cache:      store,
		registry:   registry,
		minBitrate: minBitrate,
		logger:     logger.With().Str("component", "browser").Logger(),
	}
}

// ListCategory returns one page of stations tagged slug in tagType.
//
// Fetching any page also refreshes the cached page count of the category.
func (b *Browser) ListCategory(ctx context.Context, tagType, slug string, page int) ([]*Station, error) {
	page = clampPage(page)
	key := pageKey(tagType+"/"+slug, page)

	raw, err := cache.Load(ctx, b.cache, key, PageTTL, func(ctx context.Context) ([]radionet.Station, error) {
		return b.fetchTagPage(ctx, tagType, slug, page)
	})
	if err != nil {
		return nil, err
	}

	return b.normalize(raw), nil
}

// ListSimpleCategory returns one page of a simple category such as "local".
func (b *Browser) ListSimpleCategory(ctx context.Context, category string, page int) ([]*Station, error) {
	page = clampPage(page)
	key := pageKey(category, page)

	raw, err := cache.Load(ctx, b.cache, key, PageTTL, func(ctx context.Context) ([]radionet.Station, error) {
		return b.fetchSimplePage(ctx, category, page)
	})
	if err != nil {
		return nil, err
	}

	return b.normalize(raw), nil
}

// CategoryPageCount returns the number of pages of a tag category.
func (b *Browser) CategoryPageCount(ctx context.Context, tagType, slug string) (int, error) {
	key := tagType + "/" + slug
	if n, ok := cache.Lookup[int](b.cache, key); ok {
		return n, nil
	}

	// Page 1 may still be cached while its count has expired, so go remote.
	if _, err := b.fetchTagPage(ctx, tagType, slug, 1); err != nil {
		return 0, err
	}

	n, _ := cache.Lookup[int](b.cache, key)
	return n, nil
}

// SimpleCategoryPageCount returns the number of pages of a simple category.
func (b *Browser) SimpleCategoryPageCount(ctx context.Context, category string) (int, error) {
	if n, ok := cache.Lookup[int](b.cache, category); ok {
		return n, nil
	}

	if _, err := b.fetchSimplePage(ctx, category, 1); err != nil {
		return 0, err
	}

	n, _ := cache.Lookup[int](b.cache, category)
	return n, nil
}

// ListTagValues returns the values of a tag dimension with at least
// minCount stations. A minCount of 0 keeps everything.
//
// One remote call fills the cache for every dimension at once.
func (b *Browser) ListTagValues(ctx context.Context, tagType string, minCount int) ([]radionet.Tag, error) {
	tags, err := cache.Load(ctx, b.cache, tagKey(tagType), TagTTL, func(ctx context.Context) ([]radionet.Tag, error) {
		index, err := b.api.Tags(ctx)
		if err != nil {
			b.logger.Error().Err(err).Str("tag_type", tagType).Msg("Error on get item list")
			return nil, classify(err)
		}

		for name, values := range index {
			if name != tagType {
				b.cache.Set(tagKey(name), values, TagTTL)
			}
		}

		values := index[tagType]
		if values == nil {
			values = []radionet.Tag{}
		}
		return values, nil
	})
	if err != nil {
		return nil, err
	}

	return filterTags(tags, minCount), nil
}

// fetchTagPage fetches a page of a tag category and caches it along with
// the category's page count.
func (b *Browser) fetchTagPage(ctx context.Context, tagType, slug string, page int) ([]radionet.Station, error) {
	b.logger.Debug().
		Str("tag_type", tagType).
		Str("slug", slug).
		Int("page", page).
		Msg("Fetching category page")

	resp, err := b.api.ByTag(ctx, tagType, slug, PageSize, offset(page))
	if err != nil {
		b.logger.Error().Err(err).Str("tag_type", tagType).Str("slug", slug).Msg("Error on get station by category")
		return nil, classify(err)
	}

	b.cache.Set(tagType+"/"+slug, pageCount(resp.TotalCount), PageTTL)
	return b.cache.Set(pageKey(tagType+"/"+slug, page), playables(resp), PageTTL).([]radionet.Station), nil
}

// fetchSimplePage fetches a page of a simple category and caches it along
// with the category's page count.
func (b *Browser) fetchSimplePage(ctx context.Context, category string, page int) ([]radionet.Station, error) {
	b.logger.Debug().
		Str("category", category).
		Int("page", page).
		Msg("Fetching category page")

	resp, err := b.api.List(ctx, category, PageSize, offset(page))
	if err != nil {
		b.logger.Error().Err(err).Str("category", category).Msg("Error on get station by category")
		return nil, classify(err)
	}

	b.cache.Set(category, pageCount(resp.TotalCount), PageTTL)
	return b.cache.Set(pageKey(category, page), playables(resp), PageTTL).([]radionet.Station), nil
}

func (b *Browser) normalize(raw []radionet.Station) []*Station {
	minBitrate := b.minBitrate()
	stations := make([]*Station, 0, len(raw))
	for _, r := range raw {
		stations = append(stations, b.registry.Normalize(r, minBitrate))
	}
	return stations
}

func filterTags(tags []radionet.Tag, minCount int) []radionet.Tag {
	if minCount <= 0 {
		return tags
	}

	result := make([]radionet.Tag, 0, len(tags))
	for _, tag := range tags {
		if tag.Count >= minCount {
			result = append(result, tag)
		}
	}
	return result
}

func playables(page *radionet.Page) []radionet.Station {
	if page.Playables == nil {
		return []radionet.Station{}
	}
	return page.Playables
}

// pageCount is ceil(total / PageSize).
func pageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

func offset(page int) int {
	return (page - 1) * PageSize
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func pageKey(prefix string, page int) string {
	return fmt.Sprintf("%s/%d", prefix, page)
}

func tagKey(tagType string) string {
	return "tags/" + tagType
}
