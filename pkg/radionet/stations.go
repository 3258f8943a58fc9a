package radionet

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// StationService provides station lookup, listing, and search operations.
type StationService struct {
	client *Client
}

// Details fetches a single station by id or slug.
//
// Returns ErrNotFound when the API answers with an empty list.
//
// Example:
//
//	station, err := client.Stations().Details(ctx, "dancefm")
//	if errors.Is(err, radionet.ErrNotFound) {
//	    // fall back to search
//	}
func (s *StationService) Details(ctx context.Context, idOrSlug string) (*Station, error) {
	params := url.Values{}
	params.Set("stationIds", idOrSlug)

	var stations []Station
	if err := s.client.get(ctx, "/stations/details", params, &stations); err != nil {
		return nil, fmt.Errorf("radionet: station details %q: %w", idOrSlug, err)
	}

	if len(stations) == 0 {
		return nil, fmt.Errorf("radionet: station details %q: %w", idOrSlug, ErrNotFound)
	}

	return &stations[0], nil
}

// ByTag lists stations carrying a tag, e.g. tagType "genres" and slug "rock".
func (s *StationService) ByTag(ctx context.Context, tagType, slug string, count, offset int) (*Page, error) {
	params := pageParams(count, offset)
	params.Set("tagType", tagType)
	params.Set("slug", slug)

	var page Page
	if err := s.client.get(ctx, "/stations/by-tag", params, &page); err != nil {
		return nil, fmt.Errorf("radionet: stations by %s %q: %w", tagType, slug, err)
	}

	return &page, nil
}

// List lists a simple category such as "local" or "top".
func (s *StationService) List(ctx context.Context, category string, count, offset int) (*Page, error) {
	var page Page
	if err := s.client.get(ctx, "/stations/"+url.PathEscape(category), pageParams(count, offset), &page); err != nil {
		return nil, fmt.Errorf("radionet: stations %s: %w", category, err)
	}

	return &page, nil
}

// Search runs a free-text station search.
func (s *StationService) Search(ctx context.Context, query string, count, offset int) (*Page, error) {
	params := pageParams(count, offset)
	params.Set("query", query)

	var page Page
	if err := s.client.get(ctx, "/stations/search", params, &page); err != nil {
		return nil, fmt.Errorf("radionet: search %q: %w", query, err)
	}

	return &page, nil
}

// TagService lists the values of the tag dimensions.
type TagService struct {
	client *Client
}

// List fetches every tag dimension with its values and station counts.
func (t *TagService) List(ctx context.Context) (TagIndex, error) {
	var index TagIndex
	if err := t.client.get(ctx, "/stations/tags", nil, &index); err != nil {
		return nil, fmt.Errorf("radionet: tags: %w", err)
	}

	return index, nil
}

func pageParams(count, offset int) url.Values {
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))
	params.Set("offset", strconv.Itoa(offset))
	return params
}
