package directory

import "strings"

// Station is the canonical, deduplicated form of a directory station.
//
// Stations are shared: the registry hands out the same *Station for an id
// every time and refreshes its fields in place on each normalization.
type Station struct {
	ID          string
	Slug        string
	Country     string
	City        string
	Name        string
	Description string
	Genres      []string

	ImageTiny   string
	ImageSmall  string
	ImageMedium string
	ImageLarge  string

	// StreamURL is empty until a record carrying streams was normalized.
	StreamURL string

	// Playable is true for stations built from a live API result.
	Playable bool
}

// GenreList renders Genres the way the directory displays them.
func (s *Station) GenreList() string {
	return strings.Join(s.Genres, ", ")
}
