package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"vedic-chart/internal/chart"
	"vedic-chart/internal/model"
)

// CacheEntry represents a cached chart
type CacheEntry struct {
	Chart     *model.Chart
	ExpiresAt time.Time
}

// ChartCache keeps built charts in memory for a TTL so a client can fetch a
// chart again by ID. Charts are deterministic for a given key, so an entry
// never goes stale before it expires.
type ChartCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewChartCache returns a cache with the given TTL. A non-positive TTL disables it (nil).
func NewChartCache(ttl time.Duration) *ChartCache {
	if ttl <= 0 {
		return nil
	}
	return &ChartCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get retrieves a cached chart if available and not expired
func (c *ChartCache) Get(key string) (*model.Chart, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists {
		return nil, false
	}
	if c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Chart, true
}

// Set stores a chart in the cache
func (c *ChartCache) Set(key string, ch *model.Chart) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Chart:     ch,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Len reports the number of stored entries, expired or not.
func (c *ChartCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *ChartCache) Clear() {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

// Purge removes expired entries and returns how many were dropped.
func (c *ChartCache) Purge() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
			n++
		}
	}
	return n
}

// Run purges expired entries every interval until ctx is done.
func (c *ChartCache) Run(ctx context.Context, interval time.Duration) {
	if c == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Purge()
		}
	}
}

// GenerateCacheKey creates a deterministic key from everything that affects a build.
func GenerateCacheKey(in model.BirthInput, opts chart.Options) string {
	keyStr := fmt.Sprintf("%s|%s|%s|%s|%s|%v|%v|%v|%v|%v|%v|%d|%d",
		in.Name,
		strings.TrimSpace(in.Date),
		strings.TrimSpace(in.Time),
		strings.TrimSpace(in.UTCOffset),
		strings.TrimSpace(in.TimeZone),
		in.Latitude,
		in.Longitude,
		opts.HorizonYears,
		opts.RetrogradeStepDays,
		opts.Ayanamsa.ReferenceDeg,
		opts.Ayanamsa.RateArcsecPerYear,
		opts.PrecisionMinYear,
		opts.PrecisionMaxYear,
	)

	// Hash the key to keep it reasonably sized
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
