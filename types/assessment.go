package types

// Qualitative risk labels derived from the composite score.
type RiskLabel string

const (
	LowRisk      RiskLabel = "Low Risk"
	ModerateRisk RiskLabel = "Moderate Risk"
	ElevatedRisk RiskLabel = "Elevated Risk"
	HighRisk     RiskLabel = "High Risk"
)

// CompositeAssessment is derived fresh on every query; it is never cached
// directly. Any of the four source records may be nil.
type CompositeAssessment struct {
	Location          Location                 `json:"location"`
	Advisory          *AdvisoryRecord          `json:"advisory,omitempty"`
	SecondaryAdvisory *SecondaryAdvisoryRecord `json:"secondary_advisory,omitempty"`
	Conflict          *ConflictRecord          `json:"conflict,omitempty"`
	Sentiment         *SentimentRecord         `json:"sentiment,omitempty"`
	Score             int                      `json:"score"`
	Label             RiskLabel                `json:"label"`
	MissingSources    []string                 `json:"missingSources"`
	Nearby            []Location               `json:"nearby,omitempty"`
	Briefing          string                   `json:"briefing,omitempty"`
}
