package upstream

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-tripsentry/types"
)

// Refresh the bearer token this long before its stated expiry. Refresh is
// purely proactive; a 401 mid-flight is reported as unavailable, not
// retried.
const tokenRefreshMargin = 60 * time.Second

type acledTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type acledEvent struct {
	EventType  string `json:"event_type"`
	EventDate  string `json:"event_date"`
	Fatalities any    `json:"fatalities"`
}

type acledReadResponse struct {
	Count int          `json:"count"`
	Data  []acledEvent `json:"data"`
}

// acledToken returns a cached bearer token, exchanging credentials when the
// cache is empty or inside the refresh margin.
func (c *Client) acledToken() (string, error) {
	if c.ACLEDUsername == "" || c.ACLEDPassword == "" {
		return "", fmt.Errorf("acled credentials not configured")
	}

	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.accessToken != "" && time.Until(c.tokenExpiry) > tokenRefreshMargin {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type": {"password"},
		"username":   {c.ACLEDUsername},
		"password":   {c.ACLEDPassword},
		"client_id":  {"acled"},
	}
	resp, err := c.HTTP.PostForm(c.ACLEDBase+"/oauth/token", form)
	if err != nil {
		return "", fmt.Errorf("acled token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("acled token exchange: unexpected status %s", resp.Status)
	}

	var body acledTokenResponse
	if err := decodeJSON(resp.Body, &body); err != nil {
		return "", fmt.Errorf("acled token exchange: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("acled token exchange: empty token")
	}

	c.accessToken = body.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// FetchConflict aggregates a trailing year of conflict events for a country.
func (c *Client) FetchConflict(country string) (*types.ConflictRecord, error) {
	token, err := c.acledToken()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	yearAgo := now.AddDate(-1, 0, 0)

	q := url.Values{
		"country":    {country},
		"event_date": {yearAgo.Format("2006-01-02") + "|" + now.Format("2006-01-02")},
		"limit":      {"5000"},
	}
	req, err := newGetRequest(c.ACLEDBase+"/api/acled/read?"+q.Encode(), token)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("acled read: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("acled read: unexpected status %s", resp.Status)
	}

	var body acledReadResponse
	if err := decodeJSON(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("acled read: %w", err)
	}

	rec := summarizeConflict(country, body, now)
	return &rec, nil
}

// summarizeConflict reduces raw events into the normalized record. Trend
// compares the trailing 30 days against the 30 days before that: ±20%
// movement classifies as increasing/decreasing, otherwise stable.
func summarizeConflict(country string, body acledReadResponse, now time.Time) types.ConflictRecord {
	cutoff30 := now.AddDate(0, 0, -30)
	cutoff60 := now.AddDate(0, 0, -60)

	total := body.Count
	if total == 0 {
		total = len(body.Data)
	}

	fatalities := 0
	recent30 := 0
	prior30 := 0
	eventTypes := make(map[string]int)

	for _, ev := range body.Data {
		fatalities += toInt(ev.Fatalities)
		if ev.EventType != "" {
			eventTypes[ev.EventType]++
		}
		t, err := time.Parse("2006-01-02", ev.EventDate)
		if err != nil {
			continue
		}
		if t.After(cutoff30) {
			recent30++
		} else if t.After(cutoff60) {
			prior30++
		}
	}

	trend := types.TrendStable
	switch {
	case float64(recent30) > float64(prior30)*1.2:
		trend = types.TrendIncreasing
	case float64(recent30) < float64(prior30)*0.8:
		trend = types.TrendDecreasing
	}

	return types.ConflictRecord{
		Country:         country,
		TotalEvents:     total,
		Fatalities:      fatalities,
		RecentEvents30d: recent30,
		EventTypes:      eventTypes,
		LastUpdated:     now.Format(time.RFC3339),
		Trend:           trend,
	}
}

// The feed has returned fatalities both as numbers and numeric strings.
func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(n))
		return i
	}
	return 0
}
