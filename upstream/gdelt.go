package upstream

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"go-tripsentry/types"
)

const (
	maxHeadlines = 5

	// Article-count thresholds for the trailing window.
	spikeThreshold    = 50
	elevatedThreshold = 20

	// Tone delta separating improving/worsening from stable over 7 days.
	trendToneDelta = 1.5
)

type gdeltArticle struct {
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Domain   string  `json:"domain"`
	SeenDate string  `json:"seendate"`
	Tone     float64 `json:"tone"`
}

type gdeltDocResponse struct {
	Articles []gdeltArticle `json:"articles"`
}

// SanitizeQuery strips everything outside letters, digits, whitespace and
// hyphens; the upstream query grammar treats other punctuation specially.
func SanitizeQuery(q string) string {
	var b strings.Builder
	for _, r := range q {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// FetchSentiment queries the news feed for a location. The sanitized query
// is sent as a quoted phrase to bias toward exact-location matches.
func (c *Client) FetchSentiment(location string) (*types.SentimentRecord, error) {
	phrase := SanitizeQuery(location)
	if phrase == "" {
		return nil, fmt.Errorf("gdelt: empty query after sanitizing %q", location)
	}

	q := url.Values{
		"query":      {`"` + phrase + `"`},
		"mode":       {"artlist"},
		"format":     {"json"},
		"maxrecords": {"75"},
		"timespan":   {"7d"},
		"sort":       {"datedesc"},
	}

	var body gdeltDocResponse
	if err := c.getJSON(c.GDELTDocURL+"?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("gdelt: %w", err)
	}

	rec := summarizeSentiment(location, body.Articles, time.Now().UTC())
	return &rec, nil
}

// summarizeSentiment computes tone, volume and trend from the article list.
// Headlines keep upstream order (a prefix of the list, no resort).
func summarizeSentiment(location string, articles []gdeltArticle, now time.Time) types.SentimentRecord {
	var toneSum float64
	for _, a := range articles {
		toneSum += a.Tone
	}
	tone := 0.0
	if len(articles) > 0 {
		tone = toneSum / float64(len(articles))
	}

	volume := types.VolumeNormal
	switch {
	case len(articles) >= spikeThreshold:
		volume = types.VolumeSpike
	case len(articles) >= elevatedThreshold:
		volume = types.VolumeElevated
	}

	headlines := make([]types.Headline, 0, maxHeadlines)
	for _, a := range articles {
		if len(headlines) == maxHeadlines {
			break
		}
		headlines = append(headlines, types.Headline{
			Title:  a.Title,
			Source: a.Domain,
			URL:    a.URL,
			Date:   a.SeenDate,
			Tone:   a.Tone,
		})
	}

	return types.SentimentRecord{
		Location:     location,
		ToneScore:    tone,
		VolumeLevel:  volume,
		ArticleCount: len(articles),
		Headlines:    headlines,
		Trend:        classifyToneTrend(articles, now),
		LastUpdated:  now.Format(time.RFC3339),
	}
}

// classifyToneTrend compares mean tone of the trailing 24h against the rest
// of the 7-day window. With only one bucket populated there is nothing to
// compare, so the trend is stable.
func classifyToneTrend(articles []gdeltArticle, now time.Time) types.SentimentTrend {
	cutoff := now.Add(-24 * time.Hour)

	var recentSum, olderSum float64
	var recentN, olderN int
	for _, a := range articles {
		t, err := time.Parse("20060102T150405Z", a.SeenDate)
		if err != nil {
			continue
		}
		if t.After(cutoff) {
			recentSum += a.Tone
			recentN++
		} else {
			olderSum += a.Tone
			olderN++
		}
	}

	if recentN == 0 || olderN == 0 {
		return types.ToneStable
	}

	delta := recentSum/float64(recentN) - olderSum/float64(olderN)
	switch {
	case delta > trendToneDelta:
		return types.ToneImproving
	case delta < -trendToneDelta:
		return types.ToneWorsening
	default:
		return types.ToneStable
	}
}
