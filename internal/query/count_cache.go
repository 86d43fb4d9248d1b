package query

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/jengzang/stopsearch-backend-go/internal/metrics"
)

// DefaultCountTTL is how long a computed total stays reusable
const DefaultCountTTL = 5 * time.Minute

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock
var SystemClock Clock = ClockFunc(time.Now)

// CachedCount is one stored total
type CachedCount struct {
	Key       string
	Count     int64
	Timestamp time.Time
}

// CountCache stores totals per compiled predicate for a fixed TTL. Expired entries are
// dropped when read; nothing runs in the background.
type CountCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   Clock
	entries map[string]CachedCount
}

// NewCountCache creates a cache. A nil clock uses SystemClock; ttl <= 0 uses DefaultCountTTL.
func NewCountCache(ttl time.Duration, clock Clock) *CountCache {
	if ttl <= 0 {
		ttl = DefaultCountTTL
	}
	if clock == nil {
		clock = SystemClock
	}
	return &CountCache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]CachedCount),
	}
}

// CountKey derives a stable key from the predicate text and its bound values.
func CountKey(p Predicate) string {
	data, err := json.Marshal(struct {
		SQL  string        `json:"sql"`
		Args []interface{} `json:"args"`
	}{p.Where(), p.Args})
	if err != nil {
		return fmt.Sprintf("count:%s:%v", p.Where(), p.Args)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("count:%x", hash[:16])
}

// Get returns the count for key while now - timestamp < TTL
func (c *CountCache) Get(key string) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		metrics.CountCacheMisses.Inc()
		return 0, false
	}
	if c.clock.Now().Sub(entry.Timestamp) >= c.ttl {
		delete(c.entries, key)
		metrics.CountCacheMisses.Inc()
		return 0, false
	}

	metrics.CountCacheHits.Inc()
	return entry.Count, true
}

// Set stores count under key, stamped with the current time
func (c *CountCache) Set(key string, count int64) {
	c.mu.Lock()
	c.entries[key] = CachedCount{Key: key, Count: count, Timestamp: c.clock.Now()}
	c.mu.Unlock()
}

// GetOrCompute returns the cached count or runs compute and stores its result.
// compute runs without the lock held, so concurrent misses on one key may both compute.
func (c *CountCache) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (int64, error)) (int64, error) {
	if n, ok := c.Get(key); ok {
		return n, nil
	}

	n, err := compute(ctx)
	if err != nil {
		return 0, err
	}
	c.Set(key, n)
	return n, nil
}

// Len reports the number of stored entries, expired or not
func (c *CountCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
