package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tripsentry/types"
)

func colombiaLoc() types.Location {
	return types.Location{Key: "colombia", Name: "Colombia", Country: "Colombia", CountryKey: "colombia"}
}

func norwayLoc() types.Location {
	return types.Location{Key: "norway", Name: "Norway", Country: "Norway", CountryKey: "norway"}
}

// countingFetchers builds Fetchers that record call counts and serve a fixed
// advisory, failing when fail is set.
type countingFetchers struct {
	advisoryCalls int
	fail          bool
}

func (cf *countingFetchers) fetchers() Fetchers {
	return Fetchers{
		Advisory: func(country string) (*types.AdvisoryRecord, error) {
			cf.advisoryCalls++
			if cf.fail {
				return nil, errors.New("upstream down")
			}
			return &types.AdvisoryRecord{Country: country, Level: 2}, nil
		},
		Secondary: func(country string) (*types.SecondaryAdvisoryRecord, error) {
			return nil, errors.New("upstream down")
		},
		Conflict: func(country string) (*types.ConflictRecord, error) {
			return nil, errors.New("upstream down")
		},
		Sentiment: func(location string) (*types.SentimentRecord, error) {
			return nil, errors.New("upstream down")
		},
	}
}

func TestFallbackPreferredOverLive(t *testing.T) {
	cf := &countingFetchers{}
	c := New(cf.fetchers(), DefaultPolicy())

	// Colombia is in the fallback table, so the live fetcher is never hit.
	rec, ok := c.Advisory(colombiaLoc())
	require.True(t, ok)
	assert.Equal(t, 3, rec.Level)
	assert.Equal(t, 0, cf.advisoryCalls)
}

func TestLiveFetchWhenNoFallback(t *testing.T) {
	cf := &countingFetchers{}
	c := New(cf.fetchers(), DefaultPolicy())

	rec, ok := c.Advisory(norwayLoc())
	require.True(t, ok)
	assert.Equal(t, "Norway", rec.Country)
	assert.Equal(t, 2, rec.Level)
	assert.Equal(t, 1, cf.advisoryCalls)

	// Second lookup is served from the cached live result.
	_, ok = c.Advisory(norwayLoc())
	require.True(t, ok)
	assert.Equal(t, 1, cf.advisoryCalls)
}

func TestLivePreferredWhenPolicyDisabled(t *testing.T) {
	cf := &countingFetchers{}
	c := New(cf.fetchers(), Policy{PreferCacheOverLive: false})

	// Live wins over the fallback table when the policy is flipped.
	rec, ok := c.Advisory(colombiaLoc())
	require.True(t, ok)
	assert.Equal(t, 2, rec.Level)
	assert.Equal(t, 1, cf.advisoryCalls)
}

func TestFallbackAfterLiveFailure(t *testing.T) {
	cf := &countingFetchers{fail: true}
	c := New(cf.fetchers(), Policy{PreferCacheOverLive: false})

	// Live fails, so the fallback table still saves the lookup.
	rec, ok := c.Advisory(colombiaLoc())
	require.True(t, ok)
	assert.Equal(t, 3, rec.Level)
	assert.Equal(t, 1, cf.advisoryCalls)
}

func TestUnavailabilityIsTerminal(t *testing.T) {
	cf := &countingFetchers{fail: true}
	c := New(cf.fetchers(), DefaultPolicy())

	loc := norwayLoc()
	_, ok := c.Advisory(loc)
	require.False(t, ok)
	assert.Equal(t, 1, cf.advisoryCalls)

	// The failure is remembered; no retry storm against a dead upstream.
	_, ok = c.Advisory(loc)
	require.False(t, ok)
	assert.Equal(t, 1, cf.advisoryCalls)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	cf := &countingFetchers{}
	c := New(cf.fetchers(), DefaultPolicy())

	a, ok := c.Advisory(norwayLoc())
	require.True(t, ok)
	a.Level = 99

	b, ok := c.Advisory(norwayLoc())
	require.True(t, ok)
	assert.Equal(t, 2, b.Level, "caller mutation must not leak into the cache")
}

func TestSentimentKeyedByLocation(t *testing.T) {
	sentimentQueries := []string{}
	f := Fetchers{
		Sentiment: func(location string) (*types.SentimentRecord, error) {
			sentimentQueries = append(sentimentQueries, location)
			return &types.SentimentRecord{Location: location, ToneScore: 1}, nil
		},
	}
	c := New(f, DefaultPolicy())

	city := types.Location{Key: "bogota", Name: "Bogotá", Country: "Colombia", CountryKey: "colombia", IsCity: true}
	country := colombiaLoc()

	_, ok := c.Sentiment(city)
	require.True(t, ok)
	_, ok = c.Sentiment(country)
	require.True(t, ok)

	// City and country sentiment are distinct cache entries.
	assert.Equal(t, []string{"Bogotá", "Colombia"}, sentimentQueries)
}

func TestFallbackSentimentForSeededCity(t *testing.T) {
	cf := &countingFetchers{}
	c := New(cf.fetchers(), DefaultPolicy())

	loc := types.Location{Key: "medellin", Name: "Medellín", Country: "Colombia", CountryKey: "colombia", IsCity: true}
	rec, ok := c.Sentiment(loc)
	require.True(t, ok)
	assert.Equal(t, "Medellín", rec.Location)
	assert.Equal(t, types.VolumeNormal, rec.VolumeLevel)
}

func TestFallbackPartialEntry(t *testing.T) {
	cf := &countingFetchers{fail: true}
	c := New(cf.fetchers(), DefaultPolicy())

	// France has a fallback advisory but no conflict record, so the conflict
	// lookup proceeds to the (failing) live fetch and reports unavailable.
	loc := types.Location{Key: "france", Name: "France", Country: "France", CountryKey: "france"}

	_, ok := c.Advisory(loc)
	assert.True(t, ok)

	_, ok = c.Conflict(loc)
	assert.False(t, ok)
}
