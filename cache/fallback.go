package cache

import "go-tripsentry/types"

// FallbackEntry is the pre-seeded record set for one canonical key. Any
// subset of the four sources may be present.
type FallbackEntry struct {
	Advisory  *types.AdvisoryRecord
	Secondary *types.SecondaryAdvisoryRecord
	Conflict  *types.ConflictRecord
	Sentiment *types.SentimentRecord
}

// Static fallback dataset for common destinations so the widget shows
// something even when every upstream is down. Country-level records are
// keyed by country key, sentiment by location key. Sample content, not a
// live mirror.
var fallbackTable = map[string]FallbackEntry{
	"colombia": {
		Advisory: &types.AdvisoryRecord{
			Country:     "Colombia",
			CountryCode: "CO",
			Level:       3,
			Advisory:    "Level 3: Reconsider Travel. Reconsider travel due to crime and terrorism. Some areas have increased risk.",
			LastUpdated: "2025-01-02",
			URL:         "https://travel.state.gov/content/travel/en/traveladvisories/traveladvisories/colombia-travel-advisory.html",
		},
		Secondary: &types.SecondaryAdvisoryRecord{
			Country:           "Colombia",
			AlertStatus:       []string{"avoid_all_but_essential_travel_to_parts"},
			ChangeDescription: "Updated information on regional security conditions.",
			LastUpdated:       "2025-01-10T09:00:00Z",
			URL:               "https://www.gov.uk/foreign-travel-advice/colombia",
		},
		Conflict: &types.ConflictRecord{
			Country:         "Colombia",
			TotalEvents:     820,
			Fatalities:      310,
			RecentEvents30d: 54,
			EventTypes:      map[string]int{"Violence against civilians": 290, "Battles": 240, "Protests": 290},
			LastUpdated:     "2025-01-05T00:00:00Z",
			Trend:           types.TrendStable,
		},
	},
	"mexico": {
		Advisory: &types.AdvisoryRecord{
			Country:     "Mexico",
			CountryCode: "MX",
			Level:       2,
			Advisory:    "Level 2: Exercise Increased Caution. Exercise increased caution due to crime and kidnapping. Some states carry higher advisories.",
			LastUpdated: "2025-01-02",
			URL:         "https://travel.state.gov/content/travel/en/traveladvisories/traveladvisories/mexico-travel-advisory.html",
		},
		Secondary: &types.SecondaryAdvisoryRecord{
			Country:           "Mexico",
			AlertStatus:       []string{},
			ChangeDescription: "Review of safety and security information.",
			LastUpdated:       "2024-12-18T14:30:00Z",
			URL:               "https://www.gov.uk/foreign-travel-advice/mexico",
		},
	},
	"japan": {
		Advisory: &types.AdvisoryRecord{
			Country:     "Japan",
			CountryCode: "JP",
			Level:       1,
			Advisory:    "Level 1: Exercise Normal Precautions.",
			LastUpdated: "2025-01-02",
			URL:         "https://travel.state.gov/content/travel/en/traveladvisories/traveladvisories/japan-travel-advisory.html",
		},
		Secondary: &types.SecondaryAdvisoryRecord{
			Country:           "Japan",
			AlertStatus:       []string{},
			ChangeDescription: "No recent changes.",
			LastUpdated:       "2024-11-03T10:00:00Z",
			URL:               "https://www.gov.uk/foreign-travel-advice/japan",
		},
	},
	"france": {
		Advisory: &types.AdvisoryRecord{
			Country:     "France",
			CountryCode: "FR",
			Level:       2,
			Advisory:    "Level 2: Exercise Increased Caution. Exercise increased caution due to terrorism and civil unrest.",
			LastUpdated: "2025-01-02",
			URL:         "https://travel.state.gov/content/travel/en/traveladvisories/traveladvisories/france-travel-advisory.html",
		},
	},
	"thailand": {
		Advisory: &types.AdvisoryRecord{
			Country:     "Thailand",
			CountryCode: "TH",
			Level:       1,
			Advisory:    "Level 1: Exercise Normal Precautions. Some areas near the southern border carry increased risk.",
			LastUpdated: "2025-01-02",
			URL:         "https://travel.state.gov/content/travel/en/traveladvisories/traveladvisories/thailand-travel-advisory.html",
		},
	},
	"ukraine": {
		Advisory: &types.AdvisoryRecord{
			Country:     "Ukraine",
			CountryCode: "UA",
			Level:       4,
			Advisory:    "Level 4: Do Not Travel. Do not travel due to armed conflict.",
			LastUpdated: "2025-01-02",
			URL:         "https://travel.state.gov/content/travel/en/traveladvisories/traveladvisories/ukraine-travel-advisory.html",
		},
		Conflict: &types.ConflictRecord{
			Country:         "Ukraine",
			TotalEvents:     4100,
			Fatalities:      2600,
			RecentEvents30d: 390,
			EventTypes:      map[string]int{"Battles": 1900, "Explosions/Remote violence": 1700, "Violence against civilians": 500},
			LastUpdated:     "2025-01-05T00:00:00Z",
			Trend:           types.TrendIncreasing,
		},
	},
	"medellin": {
		Sentiment: &types.SentimentRecord{
			Location:     "Medellín",
			Country:      "Colombia",
			ToneScore:    -1.4,
			VolumeLevel:  types.VolumeNormal,
			ArticleCount: 14,
			Headlines: []types.Headline{
				{Title: "Medellín tourism rebounds as digital nomads settle in", Source: "example-news.com", Date: "20250104T080000Z", Tone: 2.1},
				{Title: "Police increase patrols in El Poblado after robbery reports", Source: "example-wire.com", Date: "20250103T213000Z", Tone: -3.8},
			},
			Trend:       types.ToneStable,
			LastUpdated: "2025-01-05T00:00:00Z",
		},
	},
	"tokyo": {
		Sentiment: &types.SentimentRecord{
			Location:     "Tokyo",
			Country:      "Japan",
			ToneScore:    1.2,
			VolumeLevel:  types.VolumeNormal,
			ArticleCount: 22,
			Headlines: []types.Headline{
				{Title: "Tokyo ranked among safest large cities for travelers", Source: "example-news.com", Date: "20250102T060000Z", Tone: 4.0},
			},
			Trend:       types.ToneStable,
			LastUpdated: "2025-01-05T00:00:00Z",
		},
	},
}
