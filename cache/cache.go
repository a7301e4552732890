package cache

import (
	"log"
	"sync"

	"go-tripsentry/types"
)

// Source names used in cache keys and missing-source reporting.
type Source string

const (
	SourceAdvisory  Source = "advisory"
	SourceSecondary Source = "uk_advisory"
	SourceConflict  Source = "conflict"
	SourceSentiment Source = "sentiment"
)

// Fetchers are the live upstream calls, injected so tests can stub them.
type Fetchers struct {
	Advisory  func(country string) (*types.AdvisoryRecord, error)
	Secondary func(country string) (*types.SecondaryAdvisoryRecord, error)
	Conflict  func(country string) (*types.ConflictRecord, error)
	Sentiment func(location string) (*types.SentimentRecord, error)
}

// Policy names the availability-over-freshness trade-off. With
// PreferCacheOverLive set (the default), the static fallback table is
// consulted before any live fetch; unset moves it behind the live fetch.
type Policy struct {
	PreferCacheOverLive bool
}

func DefaultPolicy() Policy {
	return Policy{PreferCacheOverLive: true}
}

type entry struct {
	value       interface{}
	unavailable bool
}

// Cache is the per-process aggregation cache, passed into handlers rather
// than held as a package global. It remembers both successful fetches and
// terminal unavailability per (source, key) pair.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	fetchers Fetchers
	policy   Policy
	fallback map[string]FallbackEntry
}

func New(fetchers Fetchers, policy Policy) *Cache {
	return &Cache{
		entries:  make(map[string]entry),
		fetchers: fetchers,
		policy:   policy,
		fallback: fallbackTable,
	}
}

// Advisory resolves the primary advisory for a location's country.
func (c *Cache) Advisory(loc types.Location) (*types.AdvisoryRecord, bool) {
	v, ok := c.lookup(SourceAdvisory, loc.CountryKey,
		func(fe FallbackEntry) interface{} {
			if fe.Advisory == nil {
				return nil
			}
			return fe.Advisory
		},
		func() (interface{}, error) {
			rec, err := c.fetchers.Advisory(loc.Country)
			if err != nil {
				return nil, err
			}
			return rec, nil
		})
	if !ok {
		return nil, false
	}
	cp := *v.(*types.AdvisoryRecord)
	return &cp, true
}

// Secondary resolves the secondary advisory for a location's country.
func (c *Cache) Secondary(loc types.Location) (*types.SecondaryAdvisoryRecord, bool) {
	v, ok := c.lookup(SourceSecondary, loc.CountryKey,
		func(fe FallbackEntry) interface{} {
			if fe.Secondary == nil {
				return nil
			}
			return fe.Secondary
		},
		func() (interface{}, error) {
			rec, err := c.fetchers.Secondary(loc.Country)
			if err != nil {
				return nil, err
			}
			return rec, nil
		})
	if !ok {
		return nil, false
	}
	cp := *v.(*types.SecondaryAdvisoryRecord)
	return &cp, true
}

// Conflict resolves conflict statistics for a location's country.
func (c *Cache) Conflict(loc types.Location) (*types.ConflictRecord, bool) {
	v, ok := c.lookup(SourceConflict, loc.CountryKey,
		func(fe FallbackEntry) interface{} {
			if fe.Conflict == nil {
				return nil
			}
			return fe.Conflict
		},
		func() (interface{}, error) {
			rec, err := c.fetchers.Conflict(loc.Country)
			if err != nil {
				return nil, err
			}
			return rec, nil
		})
	if !ok {
		return nil, false
	}
	cp := *v.(*types.ConflictRecord)
	return &cp, true
}

// Sentiment resolves news sentiment, keyed by the location itself so city
// and country queries stay distinct.
func (c *Cache) Sentiment(loc types.Location) (*types.SentimentRecord, bool) {
	v, ok := c.lookup(SourceSentiment, loc.Key,
		func(fe FallbackEntry) interface{} {
			if fe.Sentiment == nil {
				return nil
			}
			return fe.Sentiment
		},
		func() (interface{}, error) {
			rec, err := c.fetchers.Sentiment(loc.Name)
			if err != nil {
				return nil, err
			}
			return rec, nil
		})
	if !ok {
		return nil, false
	}
	cp := *v.(*types.SentimentRecord)
	return &cp, true
}

// lookup applies the precedence order: prior live result → static fallback
// table → live fetch → cached unavailability. With PreferCacheOverLive
// unset the fallback table is only consulted after a failed live fetch.
func (c *Cache) lookup(source Source, key string, fromFallback func(FallbackEntry) interface{}, fetch func() (interface{}, error)) (interface{}, bool) {
	cacheKey := string(source) + "|" + key

	c.mu.Lock()
	if e, ok := c.entries[cacheKey]; ok {
		c.mu.Unlock()
		if e.unavailable {
			return nil, false
		}
		return e.value, true
	}
	c.mu.Unlock()

	if c.policy.PreferCacheOverLive {
		if v := c.fallbackValue(key, fromFallback); v != nil {
			return v, true
		}
	}

	// Live fetch outside the lock; two concurrent misses may both fetch,
	// which is tolerated because upstream reads are idempotent.
	v, err := fetch()
	if err != nil {
		log.Printf("upstream %s unavailable for %q: %v", source, key, err)
		if !c.policy.PreferCacheOverLive {
			if fv := c.fallbackValue(key, fromFallback); fv != nil {
				return fv, true
			}
		}
		c.store(cacheKey, entry{unavailable: true})
		return nil, false
	}

	c.store(cacheKey, entry{value: v})
	return v, true
}

func (c *Cache) fallbackValue(key string, fromFallback func(FallbackEntry) interface{}) interface{} {
	fe, ok := c.fallback[key]
	if !ok {
		return nil
	}
	return fromFallback(fe)
}

func (c *Cache) store(key string, e entry) {
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}
