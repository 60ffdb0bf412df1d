package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// staleAfter is how long an untouched bucket survives cleanup.
const staleAfter = time.Hour

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore implements Store in process memory.
// A single instance is enough for one server; it is not shared across replicas.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	closed  bool
	now     func() time.Time

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the cleanup interval for removing stale buckets.
// Set to 0 to disable automatic cleanup.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// WithClock replaces time.Now. Used by tests to drive refills.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore creates a new in-memory store with optional cleanup.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:         make(map[string]*bucket),
		now:             time.Now,
		cleanupInterval: 5 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

// ConsumeTokens refills the bucket for key and subtracts tokens from it.
func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, errors.Join(ErrContextCancelled, err)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.closed {
		return 0, time.Time{}, fmt.Errorf("%w: memory store closed", ErrStoreUnavailable)
	}

	now := ms.now()
	b, exists := ms.buckets[key]
	if !exists {
		b = &bucket{tokens: config.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}

	// Cap intervals so a long idle period cannot overflow the token count.
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/config.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*config.RefillRate, config.Capacity)
		b.lastRefill = now
	}

	// Denied requests do not drain the bucket further.
	if b.tokens-tokens >= 0 || tokens == 0 {
		b.tokens -= tokens
		remaining = b.tokens
	} else {
		remaining = b.tokens - tokens
	}
	b.lastAccess = now

	return remaining, b.lastRefill.Add(config.RefillInterval), nil
}

// Reset clears the bucket for key.
func (ms *MemoryStore) Reset(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.buckets, key)
	return nil
}

// Len reports the number of tracked buckets.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.buckets)
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeStale()
		case <-ms.stopCleanup:
			return
		}
	}
}

func (ms *MemoryStore) removeStale() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, b := range ms.buckets {
		if now.Sub(b.lastAccess) > staleAfter {
			delete(ms.buckets, key)
		}
	}
}

// Close stops the cleanup goroutine and rejects further calls.
// Safe to call multiple times.
func (ms *MemoryStore) Close() {
	ms.closeOnce.Do(func() {
		ms.mu.Lock()
		ms.closed = true
		ms.mu.Unlock()
		close(ms.stopCleanup)
	})
}
