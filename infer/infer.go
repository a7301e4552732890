// Package infer guesses a location from free-form chat text. It is a
// best-effort heuristic kept apart from the resolver's contract: a miss
// here just means the caller asks the user instead.
package infer

import (
	"context"
	"log"
	"regexp"
	"strings"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"

	"go-tripsentry/gazetteer"
	"go-tripsentry/types"
)

// Patterns that commonly introduce a place name in a travel question.
// Candidates still have to resolve against the gazetteer.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:traveling|travelling|going|moving|flying|heading)\s+to\s+([a-zA-ZÀ-ÿ' -]{2,40})`),
	regexp.MustCompile(`(?i)\b(?:visit|visiting)\s+([a-zA-ZÀ-ÿ' -]{2,40})`),
	regexp.MustCompile(`(?i)\b(?:trip|vacation|holiday)\s+(?:to|in)\s+([a-zA-ZÀ-ÿ' -]{2,40})`),
	regexp.MustCompile(`(?i)\bis\s+([a-zA-ZÀ-ÿ' -]{2,40})\s+safe\b`),
	regexp.MustCompile(`(?i)\bsafety\s+(?:in|of)\s+([a-zA-ZÀ-ÿ' -]{2,40})`),
	regexp.MustCompile(`(?i)\bin\s+([a-zA-ZÀ-ÿ' -]{2,40})\b`),
}

// Inferrer holds the optional Cloud Natural Language client. With a nil
// client only the regex pass runs.
type Inferrer struct {
	Gazetteer *gazetteer.Gazetteer
	NLP       *language.Client
}

// InferLocation extracts the first candidate that resolves against the
// gazetteer. Regex pass first, then entity extraction when available.
func (i *Inferrer) InferLocation(text string) (types.Location, bool) {
	for _, p := range locationPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			// Pattern captures run greedy; also try successively shorter
			// prefixes so "Medellin next month" still hits "medellin".
			words := strings.Fields(candidate)
			for n := len(words); n > 0; n-- {
				if loc, ok := i.Gazetteer.Resolve(strings.Join(words[:n], " ")); ok {
					return loc, true
				}
			}
		}
	}

	if i.NLP != nil {
		if loc, ok := i.inferFromEntities(text); ok {
			return loc, true
		}
	}

	return types.Location{}, false
}

// inferFromEntities asks the Natural Language API for LOCATION entities and
// resolves them in response order.
func (i *Inferrer) inferFromEntities(text string) (types.Location, bool) {
	ctx := context.Background()
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := i.NLP.AnalyzeEntities(ctx, req)
	if err != nil {
		log.Printf("entity extraction failed: %v", err)
		return types.Location{}, false
	}

	for _, e := range resp.Entities {
		if e.Type != languagepb.Entity_LOCATION {
			continue
		}
		if loc, ok := i.Gazetteer.Resolve(e.Name); ok {
			return loc, true
		}
	}
	return types.Location{}, false
}
