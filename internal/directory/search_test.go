package directory

import (
	"context"
	"testing"
)

func TestSearchAggregatesPagesInOrder(t *testing.T) {
	api := newFakeAPI()
	api.search["jazz"] = rawStations("jazz", 120)

	client, _ := newTestClient(t, api, Config{})

	res := client.Search(context.Background(), "jazz")
	if !res.OK() {
		t.Fatalf("expected ok, got %s", res.Status)
	}
	if len(res.Value) != 120 {
		t.Fatalf("expected 120 stations, got %d", len(res.Value))
	}
	if api.count("search") != 3 {
		t.Errorf("expected 3 page requests, got %d", api.count("search"))
	}
	for i, s := range res.Value {
		if want := api.search["jazz"][i].ID; s.ID != want {
			t.Fatalf("result %d: expected %s, got %s", i, want, s.ID)
		}
	}
}

func TestSearchPageCap(t *testing.T) {
	api := newFakeAPI()
	api.search["radio"] = rawStations("radio", 700)

	client, _ := newTestClient(t, api, Config{})

	res := client.Search(context.Background(), "radio")
	if !res.OK() {
		t.Fatalf("expected ok, got %s", res.Status)
	}
	if len(res.Value) != MaxSearchPages*PageSize {
		t.Errorf("expected %d stations, got %d", MaxSearchPages*PageSize, len(res.Value))
	}
	if api.count("search") != MaxSearchPages {
		t.Errorf("expected %d page requests, got %d", MaxSearchPages, api.count("search"))
	}
}

func TestSearchStopsWhenTotalReached(t *testing.T) {
	api := newFakeAPI()
	api.search["katze"] = rawStations("katze", 50)

	client, _ := newTestClient(t, api, Config{})
	client.Search(context.Background(), "katze")

	if api.count("search") != 1 {
		t.Errorf("expected a single page request, got %d", api.count("search"))
	}
}

func TestSearchPartialOnLaterFailure(t *testing.T) {
	api := newFakeAPI()
	api.search["rock"] = rawStations("rock", 200)
	api.failSearchAt = 100

	client, _ := newTestClient(t, api, Config{})

	res := client.Search(context.Background(), "rock")
	if !res.OK() {
		t.Fatalf("expected ok with partial results, got %s", res.Status)
	}
	if len(res.Value) != 100 {
		t.Errorf("expected the 100 stations collected before the failure, got %d", len(res.Value))
	}
	if api.count("search") != 3 {
		t.Errorf("expected no retry of the failed page, got %d requests", api.count("search"))
	}
}

func TestSearchFirstPageFailure(t *testing.T) {
	api := newFakeAPI()
	api.failSearchAt = 0

	client, _ := newTestClient(t, api, Config{})

	res := client.Search(context.Background(), "anything")
	if res.Status != StatusFailed {
		t.Errorf("expected failed, got %s", res.Status)
	}
}

func TestSearchSkipsUnplayable(t *testing.T) {
	api := newFakeAPI()
	api.search["mixed"] = rawStations("mixed", 3)

	client, _ := newTestClient(t, api, Config{})
	stub := client.registry.Normalize(api.search["mixed"][1], 96)
	stub.Playable = false

	res := client.Search(context.Background(), "mixed")
	if len(res.Value) != 2 {
		t.Fatalf("expected 2 playable stations, got %d", len(res.Value))
	}
	for _, s := range res.Value {
		if s == stub {
			t.Error("expected unplayable station to be left out")
		}
	}
}

func TestSearchCancelled(t *testing.T) {
	api := newFakeAPI()
	api.search["x"] = rawStations("x", 10)

	client, _ := newTestClient(t, api, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := client.Search(ctx, "x")
	if res.Status != StatusFailed {
		t.Errorf("expected failed for cancelled context, got %s", res.Status)
	}
	if api.count("search") != 0 {
		t.Errorf("expected no request, got %d", api.count("search"))
	}
}

func TestSearchNotCached(t *testing.T) {
	api := newFakeAPI()
	api.search["live"] = rawStations("live", 5)

	client, _ := newTestClient(t, api, Config{})
	ctx := context.Background()

	first := client.Search(ctx, "live")
	second := client.Search(ctx, "live")

	if len(first.Value) != len(second.Value) {
		t.Errorf("expected stable result length, got %d and %d", len(first.Value), len(second.Value))
	}
	if api.count("search") != 2 {
		t.Errorf("expected each search to go remote, got %d", api.count("search"))
	}
}
