package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
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

func TestStoreGetSet(t *testing.T) {
	clock := newFakeClock()
	store := New(WithClock(clock.Now))

	if _, ok := store.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	if got := store.Set("k", "v", 10*time.Minute); got != "v" {
		t.Errorf("expected Set to return stored value, got %v", got)
	}

	v, ok := store.Get("k")
	if !ok || v != "v" {
		t.Fatalf("expected hit with v, got %v %v", v, ok)
	}

	clock.Advance(10*time.Minute - time.Second)
	if _, ok := store.Get("k"); !ok {
		t.Error("expected hit just before expiry")
	}

	clock.Advance(time.Second)
	if _, ok := store.Get("k"); ok {
		t.Error("expected miss at expiry")
	}

	if store.Len() != 1 {
		t.Errorf("expected expired entry to stay stored, got len %d", store.Len())
	}
}

func TestStoreOverwriteResetsTTL(t *testing.T) {
	clock := newFakeClock()
	store := New(WithClock(clock.Now))

	store.Set("k", 1, time.Minute)
	clock.Advance(2 * time.Minute)
	store.Set("k", 2, time.Minute)

	v, ok := Lookup[int](store, "k")
	if !ok || v != 2 {
		t.Errorf("expected replaced value 2, got %v %v", v, ok)
	}
}

func TestStoreResetAndDelete(t *testing.T) {
	store := New()
	store.Set("a", 1, time.Hour)
	store.Set("b", 2, time.Hour)

	store.Delete("a")
	if _, ok := store.Get("a"); ok {
		t.Error("expected deleted key to miss")
	}

	store.Reset()
	if store.Len() != 0 {
		t.Errorf("expected empty store after reset, got %d", store.Len())
	}
}

func TestLookupTypeMismatch(t *testing.T) {
	store := New()
	store.Set("k", "string", time.Hour)

	if _, ok := Lookup[int](store, "k"); ok {
		t.Error("expected type mismatch to be a miss")
	}
}

func TestGetOrLoad(t *testing.T) {
	clock := newFakeClock()
	store := New(WithClock(clock.Now))
	ctx := context.Background()

	var calls int
	load := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	for i := 0; i < 3; i++ {
		v, err := Load(ctx, store, "k", time.Minute, load)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 1 {
			t.Errorf("expected cached 1, got %d", v)
		}
	}

	clock.Advance(time.Minute)
	v, err := Load(ctx, store, "k", time.Minute, load)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 2 {
		t.Errorf("expected reload after expiry, got %d", v)
	}
}

func TestGetOrLoadErrorNotCached(t *testing.T) {
	store := New()
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := store.GetOrLoad(ctx, "k", time.Minute, func(context.Context) (any, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, ok := store.Get("k"); ok {
		t.Error("expected failed load not to be cached")
	}
}

func TestGetOrLoadSingleFlight(t *testing.T) {
	store := New()
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.GetOrLoad(ctx, "k", time.Minute, func(context.Context) (any, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return "v", nil
			})
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected a single load, got %d", got)
	}
}

func TestGetOrLoadCallerCancelDoesNotFailOthers(t *testing.T) {
	store := New()

	started := make(chan struct{})
	release := make(chan struct{})
	var loadCtxErr atomic.Value

	load := func(ctx context.Context) (any, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			loadCtxErr.Store(err)
		}
		return "v", nil
	}

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(first, "k", time.Minute, load)
		firstErr <- err
	}()
	<-started

	type result struct {
		v   any
		err error
	}
	second := make(chan result, 1)
	go func() {
		v, err := store.GetOrLoad(context.Background(), "k", time.Minute, func(context.Context) (any, error) {
			t.Error("expected second caller to share the running load")
			return nil, nil
		})
		second <- result{v, err}
	}()

	// let the second caller join the in-flight load
	time.Sleep(50 * time.Millisecond)
	cancel()

	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Errorf("expected first caller to see its own cancellation, got %v", err)
	}

	close(release)
	res := <-second
	if res.err != nil || res.v != "v" {
		t.Errorf("expected second caller to get v, got %v, %v", res.v, res.err)
	}
	if err := loadCtxErr.Load(); err != nil {
		t.Errorf("expected load context to outlive the first caller, got %v", err)
	}
	if v, ok := store.Get("k"); !ok || v != "v" {
		t.Error("expected the shared load to be cached")
	}
}

func TestGetOrLoadCancelledBeforeLoad(t *testing.T) {
	store := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetOrLoad(ctx, "k", time.Minute, func(context.Context) (any, error) {
		t.Error("expected no load for a cancelled context")
		return "v", nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	store.Set("k", "v", time.Minute)
	if v, err := store.GetOrLoad(ctx, "k", time.Minute, nil); err != nil || v != "v" {
		t.Errorf("expected cached value despite cancelled context, got %v, %v", v, err)
	}
}
