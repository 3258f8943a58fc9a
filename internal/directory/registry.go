package directory

import (
	"sync"

	"github.com/jfmyers9/radionet/pkg/radionet"
)

// Registry deduplicates stations by id and indexes them by id and slug.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]*Station
	bySlug map[string]*Station
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]*Station),
		bySlug: make(map[string]*Station),
	}
}

// Normalize turns a raw API record into the canonical Station for its id.
//
// A station seen for the first time is created playable. A known station is
// reused with its Playable flag untouched and every descriptive field
// replaced: fields absent from raw are reset to empty. StreamURL is only
// recomputed when raw carries streams.
func (r *Registry) Normalize(raw radionet.Station, minBitrate int) *Station {
	r.mu.Lock()
	defer r.mu.Unlock()

	station, ok := r.byID[raw.ID]
	if !ok {
		station = &Station{Playable: true}
	}

	oldSlug := station.Slug

	station.ID = raw.ID
	station.Slug = valueOr(raw.Slug, raw.ID)
	station.Country = valueOr(raw.Country, "")
	station.City = valueOr(raw.City, "")
	station.Name = valueOr(raw.Name, "")
	station.Description = valueOr(raw.ShortDescription, "")

	station.Genres = nil
	if raw.Genres != nil {
		station.Genres = append([]string{}, raw.Genres...)
	}

	// 100x100 lands on the tiny slot after 44x44 and wins, blank or not.
	station.ImageTiny = valueOr(raw.Logo44x44, "")
	station.ImageTiny = valueOr(raw.Logo100x100, "")
	station.ImageMedium = valueOr(raw.Logo175x175, "")
	station.ImageLarge = valueOr(raw.Logo300x300, "")

	if raw.Streams != nil {
		station.StreamURL = SelectStream(raw.Streams, minBitrate)
	}

	if oldSlug != "" && oldSlug != station.Slug && r.bySlug[oldSlug] == station {
		delete(r.bySlug, oldSlug)
	}
	r.byID[station.ID] = station
	if station.Slug != "" {
		r.bySlug[station.Slug] = station
	}

	return station
}

// ByID returns the station registered under id.
func (r *Registry) ByID(id string) (*Station, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	return s, ok
}

// BySlug returns the station registered under slug.
func (r *Registry) BySlug(slug string) (*Station, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.bySlug[slug]
	return s, ok
}

// Len returns the number of distinct stations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
