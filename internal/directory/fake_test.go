package directory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jfmyers9/radionet/pkg/radionet"
	"github.com/rs/zerolog"
)

var errTransport = errors.New("connection refused")

// fakeAPI is an in-memory API with per-endpoint call counters.
type fakeAPI struct {
	mu sync.Mutex

	details  map[string]radionet.Station
	byTag    map[string]radionet.Page // key: tagType/slug/offset
	lists    map[string]radionet.Page // key: category/offset
	search   map[string][]radionet.Station
	tags     radionet.TagIndex
	language string

	searchTotal  map[string]int // overrides len(search[q]) as totalCount
	failDetails  bool
	failTags     bool
	failByTag    bool
	failSearchAt int // offset at which Search fails; -1 disables

	calls map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		details:      make(map[string]radionet.Station),
		byTag:        make(map[string]radionet.Page),
		lists:        make(map[string]radionet.Page),
		search:       make(map[string][]radionet.Station),
		searchTotal:  make(map[string]int),
		failSearchAt: -1,
		calls:        make(map[string]int),
	}
}

func (f *fakeAPI) count(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[endpoint]
}

func (f *fakeAPI) Details(ctx context.Context, idOrSlug string) (*radionet.Station, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["details"]++

	if f.failDetails {
		return nil, errTransport
	}
	station, ok := f.details[idOrSlug]
	if !ok {
		return nil, fmt.Errorf("details %q: %w", idOrSlug, radionet.ErrNotFound)
	}
	return &station, nil
}

func (f *fakeAPI) ByTag(ctx context.Context, tagType, slug string, count, offset int) (*radionet.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["bytag"]++

	if f.failByTag {
		return nil, radionet.ErrEmptyResponse
	}
	page, ok := f.byTag[fmt.Sprintf("%s/%s/%d", tagType, slug, offset)]
	if !ok {
		return &radionet.Page{}, nil
	}
	return &page, nil
}

func (f *fakeAPI) List(ctx context.Context, category string, count, offset int) (*radionet.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["list"]++

	page, ok := f.lists[fmt.Sprintf("%s/%d", category, offset)]
	if !ok {
		return nil, &radionet.Error{StatusCode: 500}
	}
	return &page, nil
}

func (f *fakeAPI) Search(ctx context.Context, query string, count, offset int) (*radionet.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["search"]++

	if f.failSearchAt >= 0 && offset >= f.failSearchAt {
		return nil, errTransport
	}

	all := f.search[query]
	total := len(all)
	if n, ok := f.searchTotal[query]; ok {
		total = n
	}

	page := &radionet.Page{TotalCount: total}
	if offset < len(all) {
		end := offset + count
		if end > len(all) {
			end = len(all)
		}
		page.Playables = all[offset:end]
	}
	return page, nil
}

func (f *fakeAPI) Tags(ctx context.Context) (radionet.TagIndex, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["tags"]++

	if f.failTags {
		return nil, errTransport
	}
	return f.tags, nil
}

func (f *fakeAPI) SetLanguage(locale string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.language = locale
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newTestClient creates a Client over api with a controllable clock.
func newTestClient(t *testing.T, api *fakeAPI, cfg Config) (*Client, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	cfg.Clock = clock.Now
	return NewWithAPI(cfg, api, zerolog.Nop()), clock
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

// rawStation builds a raw record with a name and one valid 128 kbps stream.
func rawStation(id, name string) radionet.Station {
	return radionet.Station{
		ID:   id,
		Name: strPtr(name),
		Streams: []radionet.Stream{
			{URL: "http://stream/" + id, BitRate: intPtr(128), Status: radionet.StreamStatusValid},
		},
	}
}

// rawStations builds n stations with ids prefix-0 .. prefix-(n-1).
func rawStations(prefix string, n int) []radionet.Station {
	stations := make([]radionet.Station, n)
	for i := range stations {
		id := fmt.Sprintf("%s-%d", prefix, i)
		stations[i] = rawStation(id, "Station "+id)
	}
	return stations
}
