package directory

import (
	"context"

	"github.com/jfmyers9/radionet/pkg/radionet"
	"github.com/rs/zerolog"
)

// API is the slice of the radio.net API the directory needs.
type API interface {
	// Details returns the station with the given id or slug.
	Details(ctx context.Context, idOrSlug string) (*radionet.Station, error)

	// ByTag lists one page of stations carrying a tag.
	ByTag(ctx context.Context, tagType, slug string, count, offset int) (*radionet.Page, error)

	// List lists one page of a simple category.
	List(ctx context.Context, category string, count, offset int) (*radionet.Page, error)

	// Search lists one page of free-text search results.
	Search(ctx context.Context, query string, count, offset int) (*radionet.Page, error)

	// Tags returns every tag dimension with its values.
	Tags(ctx context.Context) (radionet.TagIndex, error)

	// SetLanguage changes the accept-language of subsequent requests.
	SetLanguage(locale string)
}

// sdkAPI adapts *radionet.Client to API.
type sdkAPI struct {
	client *radionet.Client
}

func (a sdkAPI) Details(ctx context.Context, idOrSlug string) (*radionet.Station, error) {
	return a.client.Stations().Details(ctx, idOrSlug)
}

func (a sdkAPI) ByTag(ctx context.Context, tagType, slug string, count, offset int) (*radionet.Page, error) {
	return a.client.Stations().ByTag(ctx, tagType, slug, count, offset)
}

func (a sdkAPI) List(ctx context.Context, category string, count, offset int) (*radionet.Page, error) {
	return a.client.Stations().List(ctx, category, count, offset)
}

func (a sdkAPI) Search(ctx context.Context, query string, count, offset int) (*radionet.Page, error) {
	return a.client.Stations().Search(ctx, query, count, offset)
}

func (a sdkAPI) Tags(ctx context.Context) (radionet.TagIndex, error) {
	return a.client.Tags().List(ctx)
}

func (a sdkAPI) SetLanguage(locale string) {
	a.client.SetLanguage(locale)
}

// zerologAdapter satisfies radionet.Logger with a zerolog logger.
type zerologAdapter struct {
	logger zerolog.Logger
}

func (z zerologAdapter) Debugf(format string, args ...interface{}) {
	z.logger.Debug().Msgf(format, args...)
}
