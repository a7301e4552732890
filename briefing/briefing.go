package briefing

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-tripsentry/types"
)

const maxBriefingTokens = 200

// Generate asks the model for a short prose briefing of an assessment. The
// briefing is presentational; the numeric score and label are computed
// before this runs and are passed in, never asked of the model.
func Generate(ctx context.Context, client *openai.Client, a types.CompositeAssessment) (string, error) {
	prompt := buildPrompt(a)

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that writes concise, factual travel-safety briefings. Never invent statistics; use only the data provided.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   maxBriefingTokens,
			N:           1,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(a types.CompositeAssessment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a 2-3 sentence safety briefing for %s, %s.\n", a.Location.Name, a.Location.Country)
	fmt.Fprintf(&b, "Composite score: %d/100 (%s).\n", a.Score, a.Label)

	if a.Advisory != nil {
		fmt.Fprintf(&b, "Government advisory level %d: %s\n", a.Advisory.Level, a.Advisory.Advisory)
	}
	if a.SecondaryAdvisory != nil && len(a.SecondaryAdvisory.AlertStatus) > 0 {
		fmt.Fprintf(&b, "Secondary advisory alerts: %s\n", strings.Join(a.SecondaryAdvisory.AlertStatus, ", "))
	}
	if a.Conflict != nil {
		fmt.Fprintf(&b, "Conflict events last year: %d (%d fatalities, trend %s).\n",
			a.Conflict.TotalEvents, a.Conflict.Fatalities, a.Conflict.Trend)
	}
	if a.Sentiment != nil {
		fmt.Fprintf(&b, "News tone %.1f, volume %s, 7-day trend %s.\n",
			a.Sentiment.ToneScore, a.Sentiment.VolumeLevel, a.Sentiment.Trend)
	}
	if len(a.MissingSources) > 0 {
		fmt.Fprintf(&b, "Unavailable sources (mention the assessment is partial): %s\n", strings.Join(a.MissingSources, ", "))
	}

	b.WriteString("Briefing:")
	return b.String()
}
