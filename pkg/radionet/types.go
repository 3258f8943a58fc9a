package radionet

// Station is a raw station record as returned by the API.
//
// Optional fields are pointers (or nil slices) so callers can tell an
// absent field from an empty one.
type Station struct {
	ID               string   `json:"id"`
	Slug             *string  `json:"slug,omitempty"`
	Name             *string  `json:"name,omitempty"`
	Country          *string  `json:"country,omitempty"`
	City             *string  `json:"city,omitempty"`
	ShortDescription *string  `json:"shortDescription,omitempty"`
	Genres           []string `json:"genres,omitempty"`
	Logo44x44        *string  `json:"logo44x44,omitempty"`
	Logo100x100      *string  `json:"logo100x100,omitempty"`
	Logo175x175      *string  `json:"logo175x175,omitempty"`
	Logo300x300      *string  `json:"logo300x300,omitempty"`
	Streams          []Stream `json:"streams,omitempty"`
}

// Stream describes one playable stream of a station.
type Stream struct {
	URL     string `json:"url"`
	BitRate *int   `json:"bitRate,omitempty"`
	Status  string `json:"status"`
}

// StreamStatusValid is the status of a stream the API considers working.
const StreamStatusValid = "VALID"

// Page is a paginated station listing.
type Page struct {
	TotalCount int       `json:"totalCount"`
	Playables  []Station `json:"playables"`
}

// Tag is one value of a tag dimension, e.g. a single genre.
type Tag struct {
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Count int    `json:"count"`
}

// TagIndex maps a tag type ("genres", "topics", ...) to its values.
type TagIndex map[string][]Tag
