package scoring

import (
	"go-tripsentry/types"
)

const (
	baseScore = 100

	advisoryLevelPenalty = 15 // per level above 1

	// Conflict event-count thresholds, evaluated highest-first.
	highEventThreshold     = 1000
	moderateEventThreshold = 500
	lowEventThreshold      = 100

	highEventPenalty     = 15
	moderateEventPenalty = 10
	lowEventPenalty      = 5

	// Fatalities
	highFatalityThreshold = 500
	lowFatalityThreshold  = 100
	highFatalityPenalty   = 10
	lowFatalityPenalty    = 5

	increasingTrendPenalty = 5
	decreasingTrendBonus   = 3

	// Sentiment tone
	veryNegativeTone    = -5.0
	negativeTone        = -2.0
	positiveTone        = 2.0
	veryNegativePenalty = 10
	negativePenalty     = 5
	positiveBonus       = 3

	spikeVolumePenalty    = 8
	elevatedVolumePenalty = 3

	worseningTrendPenalty = 5
	improvingTrendBonus   = 3
)

// Score computes the composite 1-100 safety score. Pure function: no I/O,
// no hidden state. Any input may be nil; an absent source skips its step
// entirely rather than contributing a neutral placeholder.
func Score(advisory *types.AdvisoryRecord, conflict *types.ConflictRecord, sentiment *types.SentimentRecord) int {
	score := baseScore

	if advisory != nil {
		level := clampLevel(advisory.Level)
		score -= (level - 1) * advisoryLevelPenalty
	}

	if conflict != nil {
		switch {
		case conflict.TotalEvents > highEventThreshold:
			score -= highEventPenalty
		case conflict.TotalEvents > moderateEventThreshold:
			score -= moderateEventPenalty
		case conflict.TotalEvents > lowEventThreshold:
			score -= lowEventPenalty
		}

		switch {
		case conflict.Fatalities > highFatalityThreshold:
			score -= highFatalityPenalty
		case conflict.Fatalities > lowFatalityThreshold:
			score -= lowFatalityPenalty
		}

		switch conflict.Trend {
		case types.TrendIncreasing:
			score -= increasingTrendPenalty
		case types.TrendDecreasing:
			score += decreasingTrendBonus
		}
	}

	if sentiment != nil {
		switch {
		case sentiment.ToneScore < veryNegativeTone:
			score -= veryNegativePenalty
		case sentiment.ToneScore < negativeTone:
			score -= negativePenalty
		case sentiment.ToneScore > positiveTone:
			score += positiveBonus
		}

		switch sentiment.VolumeLevel {
		case types.VolumeSpike:
			score -= spikeVolumePenalty
		case types.VolumeElevated:
			score -= elevatedVolumePenalty
		}

		switch sentiment.Trend {
		case types.ToneWorsening:
			score -= worseningTrendPenalty
		case types.ToneImproving:
			score += improvingTrendBonus
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 1 {
		score = 1
	}
	return score
}

// Label maps a clamped score to its qualitative label. Breakpoints are
// inclusive lower bounds.
func Label(score int) types.RiskLabel {
	switch {
	case score >= 75:
		return types.LowRisk
	case score >= 50:
		return types.ModerateRisk
	case score >= 25:
		return types.ElevatedRisk
	default:
		return types.HighRisk
	}
}

// ClampLevel forces an advisory level into [1,4].
func ClampLevel(level int) int {
	return clampLevel(level)
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 4 {
		return 4
	}
	return level
}
