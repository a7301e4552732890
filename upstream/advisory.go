package upstream

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go-tripsentry/scoring"
	"go-tripsentry/types"
)

// The global advisory feed returns every country in one list; field names
// vary between feed revisions, so the entry keeps the known spellings and
// parseAdvisoryEntry picks through them in one place.
type stateFeedEntry struct {
	Country     string `json:"country"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	CountryCode string `json:"country_code"`
	ISOCode     string `json:"iso_code"`
	Level       any    `json:"level"`
	Advisory    string `json:"advisory"`
	Summary     string `json:"summary"`
	DateUpdated string `json:"date_updated"`
	PublishDate string `json:"published_date"`
	AdvisoryURL string `json:"url"`
	SourceLink  string `json:"link"`
}

var levelPattern = regexp.MustCompile(`(?i)level\s*([1-4])`)

// FetchAdvisory pulls the global advisory feed and extracts the entry for
// the given country (case-insensitive match on name).
func (c *Client) FetchAdvisory(country string) (*types.AdvisoryRecord, error) {
	var entries []stateFeedEntry
	if err := c.getJSON(c.StateFeedURL, &entries); err != nil {
		return nil, fmt.Errorf("advisory feed: %w", err)
	}

	want := strings.ToLower(strings.TrimSpace(country))
	for _, e := range entries {
		name := e.Country
		if name == "" {
			name = e.Name
		}
		if name == "" && e.Title != "" {
			// Titles look like "Colombia - Level 3: Reconsider Travel".
			name = strings.TrimSpace(strings.SplitN(e.Title, "-", 2)[0])
		}
		if strings.ToLower(strings.TrimSpace(name)) != want {
			continue
		}
		rec := parseAdvisoryEntry(name, e)
		return &rec, nil
	}

	return nil, fmt.Errorf("advisory feed: no entry for country %q", country)
}

// parseAdvisoryEntry normalizes one feed entry. Level extraction falls back
// from the explicit field to a "Level N" match in the text, then defaults
// to 1; the result is always clamped to [1,4].
func parseAdvisoryEntry(name string, e stateFeedEntry) types.AdvisoryRecord {
	text := e.Advisory
	if text == "" {
		text = e.Summary
	}
	if text == "" {
		text = e.Title
	}

	level := 0
	switch v := e.Level.(type) {
	case float64:
		level = int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			level = n
		}
	}
	if level == 0 {
		if m := levelPattern.FindStringSubmatch(text); m != nil {
			level, _ = strconv.Atoi(m[1])
		}
	}
	if level == 0 {
		level = 1
	}

	code := e.CountryCode
	if code == "" {
		code = e.ISOCode
	}
	updated := e.DateUpdated
	if updated == "" {
		updated = e.PublishDate
	}
	url := e.AdvisoryURL
	if url == "" {
		url = e.SourceLink
	}

	return types.AdvisoryRecord{
		Country:     name,
		CountryCode: code,
		Level:       scoring.ClampLevel(level),
		Advisory:    text,
		LastUpdated: updated,
		URL:         url,
	}
}
