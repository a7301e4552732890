package mcptool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tripsentry/aggregator"
	"go-tripsentry/cache"
	"go-tripsentry/gazetteer"
	"go-tripsentry/types"
)

func testDeps() Deps {
	g := gazetteer.New()
	fetchers := cache.Fetchers{
		Advisory: func(country string) (*types.AdvisoryRecord, error) {
			return &types.AdvisoryRecord{Country: country, Level: 2}, nil
		},
		Secondary: func(country string) (*types.SecondaryAdvisoryRecord, error) {
			return &types.SecondaryAdvisoryRecord{Country: country, AlertStatus: []string{}}, nil
		},
		Conflict: func(country string) (*types.ConflictRecord, error) {
			return &types.ConflictRecord{Country: country, TotalEvents: 10, Trend: types.TrendStable}, nil
		},
		Sentiment: func(location string) (*types.SentimentRecord, error) {
			return &types.SentimentRecord{Location: location, VolumeLevel: types.VolumeNormal, Trend: types.ToneStable}, nil
		},
	}
	c := cache.New(fetchers, cache.Policy{PreferCacheOverLive: false})
	return Deps{Gazetteer: g, Aggregator: aggregator.New(g, c)}
}

func TestHandleCheckNoArguments(t *testing.T) {
	got := handleCheck(testDeps(), map[string]interface{}{})

	assert.Equal(t, "open", got.Summary.QueryType)
	assert.Nil(t, got.Assessment)
	assert.Empty(t, got.Error)
	assert.NotEmpty(t, got.FollowUps, "an open call still guides the conversation")
	assert.Equal(t, dataSourceNames, got.Summary.DataSources)
}

func TestHandleCheckCity(t *testing.T) {
	got := handleCheck(testDeps(), map[string]interface{}{"city": "Medellin"})

	assert.Equal(t, "city", got.Summary.QueryType)
	assert.Equal(t, "Medellín", got.Summary.City)
	assert.Equal(t, "Colombia", got.Summary.Country)
	require.NotNil(t, got.Assessment)
	assert.Equal(t, 85, got.Assessment.Score)
	assert.NotEmpty(t, got.FollowUps)
}

func TestHandleCheckCountry(t *testing.T) {
	got := handleCheck(testDeps(), map[string]interface{}{"country": "Japan"})

	assert.Equal(t, "country", got.Summary.QueryType)
	assert.Equal(t, "Japan", got.Summary.Country)
	assert.Empty(t, got.Summary.City)
	require.NotNil(t, got.Assessment)
}

func TestHandleCheckLocationTakesPrecedence(t *testing.T) {
	got := handleCheck(testDeps(), map[string]interface{}{
		"location": "tokyo",
		"country":  "Colombia",
	})

	assert.Equal(t, "Tokyo", got.Summary.Location)
	assert.Equal(t, "Japan", got.Summary.Country)
}

func TestHandleCheckUnresolved(t *testing.T) {
	got := handleCheck(testDeps(), map[string]interface{}{"location": "Narnia"})

	assert.Equal(t, "unresolved", got.Summary.QueryType)
	assert.Nil(t, got.Assessment)
	assert.NotEmpty(t, got.Error)
	assert.NotEmpty(t, got.FollowUps)
}

func TestHandleCheckSourceFlags(t *testing.T) {
	got := handleCheck(testDeps(), map[string]interface{}{
		"location":         "Japan",
		"include_news":     false,
		"include_conflict": false,
	})

	require.NotNil(t, got.Assessment)
	assert.Nil(t, got.Assessment.Conflict)
	assert.Nil(t, got.Assessment.Sentiment)
	assert.Equal(t, []string{"conflict", "sentiment"}, got.Assessment.MissingSources)
}

func TestArgHelpers(t *testing.T) {
	args := map[string]interface{}{"s": "x", "b": false, "n": 3.0}

	assert.Equal(t, "x", stringArg(args, "s"))
	assert.Equal(t, "", stringArg(args, "missing"))
	assert.Equal(t, "", stringArg(args, "n"), "non-string values are ignored")

	assert.False(t, boolArg(args, "b", true))
	assert.True(t, boolArg(args, "missing", true))
	assert.True(t, boolArg(args, "n", true), "non-bool values fall back")
}
