package upstream

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountrySlug(t *testing.T) {
	cases := map[string]string{
		"France":         "france",
		"New Zealand":    "new-zealand",
		"United States":  "usa",
		"Myanmar":        "myanmar-burma",
		"Ivory Coast":    "cote-d-ivoire",
		"St. Lucia":      "st-lucia",
		"  Costa Rica  ": "costa-rica",
	}
	for in, want := range cases {
		assert.Equal(t, want, CountrySlug(in), "slug for %q", in)
	}
}

func TestFetchUKAdvisory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/content/foreign-travel-advice/colombia", r.URL.Path)
		w.Write([]byte(`{
			"base_path": "/foreign-travel-advice/colombia",
			"public_updated_at": "2025-01-10T09:00:00Z",
			"details": {
				"alert_status": ["avoid_all_but_essential_travel_to_parts"],
				"change_description": "Updated regional security information."
			}
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	rec, err := c.FetchUKAdvisory("Colombia")
	require.NoError(t, err)
	assert.Equal(t, "Colombia", rec.Country)
	assert.Equal(t, []string{"avoid_all_but_essential_travel_to_parts"}, rec.AlertStatus)
	assert.Equal(t, "Updated regional security information.", rec.ChangeDescription)
	assert.Equal(t, "2025-01-10T09:00:00Z", rec.LastUpdated)
	assert.Equal(t, "https://www.gov.uk/foreign-travel-advice/colombia", rec.URL)
}

func TestFetchUKAdvisoryNoAlerts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"details": {}, "public_updated_at": "2024-11-03T10:00:00Z"}`))
	}))
	defer srv.Close()

	// Missing alert_status means "no special alerts", never a nil slice.
	c := newTestClient(srv.URL)
	rec, err := c.FetchUKAdvisory("Japan")
	require.NoError(t, err)
	assert.NotNil(t, rec.AlertStatus)
	assert.Empty(t, rec.AlertStatus)
}

func TestFetchUKAdvisoryNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.FetchUKAdvisory("Wakanda")
	assert.Error(t, err)
}
