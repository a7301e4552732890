package handlers

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tripsentry/aggregator"
	"go-tripsentry/analytics"
	"go-tripsentry/cache"
	"go-tripsentry/community"
	"go-tripsentry/gazetteer"
	"go-tripsentry/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestEnv builds an Env on stub fetchers; failAll flips every upstream
// into an error so handlers exercise the unavailable path.
func newTestEnv(failAll bool) *Env {
	down := errors.New("upstream down")
	fetchers := cache.Fetchers{
		Advisory: func(country string) (*types.AdvisoryRecord, error) {
			if failAll {
				return nil, down
			}
			return &types.AdvisoryRecord{Country: country, Level: 2, Advisory: "Exercise increased caution."}, nil
		},
		Secondary: func(country string) (*types.SecondaryAdvisoryRecord, error) {
			if failAll {
				return nil, down
			}
			return &types.SecondaryAdvisoryRecord{Country: country, AlertStatus: []string{}}, nil
		},
		Conflict: func(country string) (*types.ConflictRecord, error) {
			if failAll {
				return nil, down
			}
			return &types.ConflictRecord{Country: country, TotalEvents: 40, Trend: types.TrendStable}, nil
		},
		Sentiment: func(location string) (*types.SentimentRecord, error) {
			if failAll {
				return nil, down
			}
			return &types.SentimentRecord{Location: location, ToneScore: 0.5, VolumeLevel: types.VolumeNormal, Trend: types.ToneStable}, nil
		},
	}

	g := gazetteer.New()
	agCache := cache.New(fetchers, cache.Policy{PreferCacheOverLive: false})
	return &Env{
		Gazetteer:  g,
		Cache:      agCache,
		Aggregator: aggregator.New(g, agCache),
		Community:  community.New(&community.MemoryStore{}, rand.New(rand.NewSource(42))),
		Events:     analytics.NewLog(),
	}
}

func newTestRouter(env *Env) *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	api.GET("/advisory", env.GetAdvisory)
	api.GET("/uk", env.GetUKAdvisory)
	api.GET("/gdelt", env.GetSentimentFeed)
	api.GET("/acled", env.GetConflict)
	api.GET("/assessment", env.GetAssessment)
	api.GET("/sentiment", env.GetCommunitySentiment)
	api.POST("/sentiment", env.PostCommunityVote)
	api.POST("/track", env.PostTrack)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAdvisory(t *testing.T) {
	r := newTestRouter(newTestEnv(false))

	w := doRequest(r, http.MethodGet, "/api/advisory?country=norway", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rec types.AdvisoryRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "Norway", rec.Country)
	assert.Equal(t, 2, rec.Level)
}

func TestGetAdvisoryMissingParam(t *testing.T) {
	r := newTestRouter(newTestEnv(false))
	w := doRequest(r, http.MethodGet, "/api/advisory", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAdvisoryUnknownLocation(t *testing.T) {
	r := newTestRouter(newTestEnv(false))
	w := doRequest(r, http.MethodGet, "/api/advisory?country=atlantis", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAdvisoryUpstreamDown(t *testing.T) {
	env := newTestEnv(true)
	r := newTestRouter(env)

	w := doRequest(r, http.MethodGet, "/api/advisory?country=norway", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")

	// The failure lands in the analytics log for the hourly sweep.
	events := env.Events.Snapshot()
	require.Len(t, events, 1)
	assert.Equal(t, "upstream_error", events[0].Name)
}

func TestGetUKAdvisory(t *testing.T) {
	r := newTestRouter(newTestEnv(false))

	w := doRequest(r, http.MethodGet, "/api/uk?country=japan", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Japan", body["country"])
	assert.Contains(t, body, "alert_status")
}

func TestGetConflictAndSentimentFeed(t *testing.T) {
	r := newTestRouter(newTestEnv(false))

	w := doRequest(r, http.MethodGet, "/api/acled?country=norway", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/gdelt?location=tokyo", "")
	require.Equal(t, http.StatusOK, w.Code)
	var rec types.SentimentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "Tokyo", rec.Location)
}

func TestGetAssessment(t *testing.T) {
	r := newTestRouter(newTestEnv(false))

	w := doRequest(r, http.MethodGet, "/api/assessment?location=norway", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got types.CompositeAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "norway", got.Location.Key)
	assert.Equal(t, 85, got.Score)
	assert.Equal(t, types.LowRisk, got.Label)
	assert.Empty(t, got.MissingSources)
}

func TestGetAssessmentSourceFlags(t *testing.T) {
	r := newTestRouter(newTestEnv(false))

	w := doRequest(r, http.MethodGet, "/api/assessment?location=norway&conflict=false&news=false", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got types.CompositeAssessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Nil(t, got.Conflict)
	assert.Nil(t, got.Sentiment)
	assert.Equal(t, []string{"conflict", "sentiment"}, got.MissingSources)
}

func TestGetCommunitySentiment(t *testing.T) {
	r := newTestRouter(newTestEnv(false))

	w := doRequest(r, http.MethodGet, "/api/sentiment?location=medellin", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.GreaterOrEqual(t, body["total"].(float64), float64(60))
	assert.Equal(t, float64(0), body["realSafe"])
	assert.Contains(t, body, "safePercent")
}

func TestPostCommunityVote(t *testing.T) {
	r := newTestRouter(newTestEnv(false))

	w := doRequest(r, http.MethodPost, "/api/sentiment?location=medellin", `{"vote": "safe"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["realSafe"])
	assert.Equal(t, float64(0), body["realUnsafe"])
}

func TestPostCommunityVoteInvalid(t *testing.T) {
	r := newTestRouter(newTestEnv(false))

	w := doRequest(r, http.MethodPost, "/api/sentiment?location=medellin", `{"vote": "maybe"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/sentiment?location=medellin", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostTrackAlwaysSucceeds(t *testing.T) {
	env := newTestEnv(false)
	r := newTestRouter(env)

	w := doRequest(r, http.MethodPost, "/api/track", `{"event": "widget_open", "data": {"page": "home"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Garbage still gets a success response.
	w = doRequest(r, http.MethodPost, "/api/track", `garbage`)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])

	events := env.Events.Snapshot()
	require.Len(t, events, 1, "only the well-formed event is recorded")
	assert.Equal(t, "widget_open", events[0].Name)
}
