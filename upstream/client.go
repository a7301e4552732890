package upstream

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"
)

// Default upstream endpoints. All overridable through env so the widget
// backend can be pointed at mirrors or fixtures.
const (
	defaultStateFeedURL  = "https://cadataapi.state.gov/api/TravelAdvisories"
	defaultUKContentBase = "https://www.gov.uk/api/content/foreign-travel-advice"
	defaultACLEDBase     = "https://acleddata.com"
	defaultGDELTDocURL   = "https://api.gdeltproject.org/api/v2/doc/doc"
)

// Client holds the four upstream adapters. Failure of any fetch is returned
// as an error; callers downgrade it to a missing source, it never aborts a
// sibling fetch.
type Client struct {
	HTTP *http.Client

	StateFeedURL  string
	UKContentBase string
	ACLEDBase     string
	GDELTDocURL   string

	ACLEDUsername string
	ACLEDPassword string

	tokenMu     sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient builds a Client from the environment. Missing ACLED credentials
// are not an error here; the conflict adapter reports unavailability per
// fetch instead of failing startup.
func NewClient() *Client {
	c := &Client{
		HTTP:          &http.Client{Timeout: 10 * time.Second},
		StateFeedURL:  envOr("STATE_ADVISORY_URL", defaultStateFeedURL),
		UKContentBase: envOr("UK_CONTENT_API_BASE", defaultUKContentBase),
		ACLEDBase:     envOr("ACLED_BASE_URL", defaultACLEDBase),
		GDELTDocURL:   envOr("GDELT_DOC_URL", defaultGDELTDocURL),
		ACLEDUsername: os.Getenv("ACLED_USERNAME"),
		ACLEDPassword: os.Getenv("ACLED_PASSWORD"),
	}
	return c
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func decodeJSON(r io.Reader, out interface{}) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	return nil
}

func newGetRequest(url, bearer string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return req, nil
}

// getJSON fetches a URL and decodes the body into out.
func (c *Client) getJSON(url string, out interface{}) error {
	resp, err := c.HTTP.Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("malformed payload: %w", err)
	}
	return nil
}
