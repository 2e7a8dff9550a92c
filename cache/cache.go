// Package cache wraps ristretto as an in-process memoizing cache. The
// mahjong package's Decomposer fronts its recursive partition search with one of
// these, keyed by bucket signature, since partition enumeration is a pure
// function of its input and ristretto already solves bounded-memory
// memoization with admission/eviction policy.
package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Memo is a general-purpose memoizing cache with a default TTL.
type Memo struct {
	store *ristretto.Cache
	ttl   time.Duration
}

// New builds a Memo. maxCost bounds ristretto's cost accounting (callers
// using Set with cost 1 per entry are effectively bounding entry count);
// ttl is the default expiry applied by Set.
func New(maxCost int64, ttl time.Duration) (*Memo, error) {
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e7,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("cache: new ristretto cache: %w", err)
	}
	return &Memo{store: store, ttl: ttl}, nil
}

// Get returns the value stored under key, if present and unexpired.
func (m *Memo) Get(key string) (any, bool) {
	return m.store.Get(key)
}

// Set stores value under key with cost 1 and the Memo's default TTL.
// Returns false if ristretto dropped the set (e.g. contended buffer).
func (m *Memo) Set(key string, value any) bool {
	return m.store.SetWithTTL(key, value, 1, m.ttl)
}

// Wait blocks until all pending Set calls have been applied. Intended for
// tests that need a Set to be visible to a subsequent Get deterministically.
func (m *Memo) Wait() { m.store.Wait() }

// Close releases ristretto's background goroutines.
func (m *Memo) Close() { m.store.Close() }
