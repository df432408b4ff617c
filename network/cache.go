// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// PurviewCache memoizes potential purviews per (direction, mechanism).
// Reads take a shared lock; concurrent misses on one key run the
// computation once and every caller receives the same result. Entries are
// stored only after a successful computation and are never evicted.
type PurviewCache struct {
	mu      sync.RWMutex
	entries map[string][][]int
	group   singleflight.Group

	requests atomic.Uint64
	misses   atomic.Uint64

	owner uint64 // content hash of the bound network, guarded by mu
	bound bool
}

// CacheStats is a snapshot of cache counters. Misses counts computations
// actually executed; every other request is a hit, including callers that
// waited on a concurrent computation of the same key.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// NewPurviewCache returns an empty cache.
func NewPurviewCache() *PurviewCache {
	return &PurviewCache{entries: make(map[string][][]int)}
}

// bind ties the cache to the content hash of one network.
func (c *PurviewCache) bind(hash uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.bound {
		c.owner, c.bound = hash, true

		return nil
	}
	if c.owner != hash {
		return ErrCacheOwner
	}

	return nil
}

func cacheKey(dir Direction, mechanism []int) string {
	var b strings.Builder
	b.WriteString(dir.String())
	b.WriteByte(':')
	for i, m := range mechanism {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(m))
	}

	return b.String()
}

// Get returns the cached purviews for (dir, mechanism), running compute on
// a miss. mechanism must already be canonical. A failed computation is not
// cached.
func (c *PurviewCache) Get(dir Direction, mechanism []int, compute func() ([][]int, error)) ([][]int, error) {
	c.requests.Add(1)
	key := cacheKey(dir, mechanism)
	if v, ok := c.lookup(key); ok {
		return clonePurviews(v), nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// a concurrent caller may have stored the entry between lookup and Do
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		c.misses.Add(1)
		out, err := compute()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.entries == nil {
			c.entries = make(map[string][][]int)
		}
		c.entries[key] = out
		c.mu.Unlock()

		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("network: PurviewCache.Get %s: %w", key, err)
	}

	return clonePurviews(v.([][]int)), nil
}

func (c *PurviewCache) lookup(key string) ([][]int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]

	return v, ok
}

// Len returns the number of stored entries.
func (c *PurviewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns a snapshot of the counters.
func (c *PurviewCache) Stats() CacheStats {
	misses := c.misses.Load()

	return CacheStats{Hits: c.requests.Load() - misses, Misses: misses, Entries: c.Len()}
}

func clonePurviews(in [][]int) [][]int {
	out := make([][]int, len(in))
	for i, p := range in {
		out[i] = slices.Clone(p)
	}

	return out
}
