package types

// Trend classifications for conflict-event counts.
type ConflictTrend string

const (
	TrendIncreasing ConflictTrend = "increasing"
	TrendDecreasing ConflictTrend = "decreasing"
	TrendStable     ConflictTrend = "stable"
)

// News-volume classifications from the sentiment feed.
type VolumeLevel string

const (
	VolumeNormal   VolumeLevel = "normal"
	VolumeElevated VolumeLevel = "elevated"
	VolumeSpike    VolumeLevel = "spike"
)

// Seven-day tone trend from the sentiment feed.
type SentimentTrend string

const (
	ToneImproving SentimentTrend = "improving"
	ToneWorsening SentimentTrend = "worsening"
	ToneStable    SentimentTrend = "stable"
)

// AdvisoryRecord is the normalized entry from the primary government
// advisory feed. Level is always clamped to [1,4].
type AdvisoryRecord struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Level       int    `json:"level"`
	Advisory    string `json:"advisory"`
	LastUpdated string `json:"last_updated"`
	URL         string `json:"url"`
}

// SecondaryAdvisoryRecord is the normalized entry from the secondary
// government source. An empty AlertStatus means "no special alerts", which
// is a valid state and not missing data.
type SecondaryAdvisoryRecord struct {
	Country           string   `json:"country"`
	AlertStatus       []string `json:"alert_status"`
	ChangeDescription string   `json:"change_description"`
	LastUpdated       string   `json:"last_updated"`
	URL               string   `json:"url"`
}

// ConflictRecord aggregates conflict-event statistics for a country (or a
// finer-grained location when city-level data exists).
type ConflictRecord struct {
	Country         string         `json:"country"`
	Location        string         `json:"location,omitempty"`
	TotalEvents     int            `json:"total_events"`
	Fatalities      int            `json:"fatalities"`
	RecentEvents30d int            `json:"recent_events_30d"`
	EventTypes      map[string]int `json:"event_types"`
	LastUpdated     string         `json:"last_updated"`
	Trend           ConflictTrend  `json:"trend"`
}

// Headline is one representative article from the news-sentiment feed.
type Headline struct {
	Title  string  `json:"title"`
	Source string  `json:"source"`
	URL    string  `json:"url"`
	Date   string  `json:"date"`
	Tone   float64 `json:"tone"`
}

// SentimentRecord is the normalized news-tone snapshot for a location.
// Headlines is a prefix of the upstream article list in upstream order.
type SentimentRecord struct {
	Location     string         `json:"location"`
	Country      string         `json:"country,omitempty"`
	ToneScore    float64        `json:"tone_score"`
	VolumeLevel  VolumeLevel    `json:"volume_level"`
	ArticleCount int            `json:"article_count"`
	Headlines    []Headline     `json:"headlines"`
	Trend        SentimentTrend `json:"trend"`
	LastUpdated  string         `json:"last_updated"`
}
