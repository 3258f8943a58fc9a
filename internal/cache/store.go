package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Entry is a cached value with its creation time and lifetime.
type Entry struct {
	Value     any
	CreatedAt time.Time
	TTL       time.Duration
}

// Valid reports whether the entry is still fresh at now.
func (e Entry) Valid(now time.Time) bool {
	return now.Before(e.CreatedAt.Add(e.TTL))
}

// Clock returns the current time. Tests replace it to move time forward.
type Clock func() time.Time

// Store is a time-expiring key/value store.
//
// Expired entries are treated as misses but stay in memory until the key is
// overwritten or the store is reset. Concurrent loads of the same key are
// collapsed into one call of the loader.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	now     Clock

	loads singleflight.Group
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to stamp and expire entries.
func WithClock(clock Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value for key if it was set and has not expired.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok || !entry.Valid(s.now()) {
		return nil, false
	}
	return entry.Value, true
}

// Set stores value under key for ttl and returns value.
// An existing entry for key is replaced, never merged.
func (s *Store) Set(key string, value any, ttl time.Duration) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = Entry{
		Value:     value,
		CreatedAt: s.now(),
		TTL:       ttl,
	}
	return value
}

// GetOrLoad returns the cached value for key, calling load on a miss and
// caching its result for ttl. Errors from load are returned and not cached.
//
// Callers racing on the same missing key share a single load. The load runs
// detached from the cancellation of whichever caller started it; each caller
// stops waiting when its own ctx is done.
func (s *Store) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) (any, error)) (any, error) {
	if v, ok := s.Get(key); ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(key, func() (any, error) {
		if v, ok := s.Get(key); ok {
			return v, nil
		}
		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		return s.Set(key, v, ttl), nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Delete removes key from the store.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Reset drops every entry.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]Entry)
}

// Len returns the number of stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Lookup is Get with a typed result. A value of another type is a miss.
func Lookup[T any](s *Store, key string) (T, bool) {
	var zero T
	v, ok := s.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Load is GetOrLoad with a typed result.
func Load[T any](ctx context.Context, s *Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var zero T
	v, err := s.GetOrLoad(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %q holds %T", key, v)
	}
	return t, nil
}
