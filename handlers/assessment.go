package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-tripsentry/aggregator"
	"go-tripsentry/briefing"
)

// GetAssessment serves GET /api/assessment?location=<string>. Optional
// flags: conflict/news (default on) and brief=true for an AI summary.
func (e *Env) GetAssessment(c *gin.Context) {
	loc, ok := e.resolveParam(c, "location")
	if !ok {
		return
	}

	opts := aggregator.Options{
		IncludeConflict: boolQuery(c, "conflict", true),
		IncludeNews:     boolQuery(c, "news", true),
	}
	assessment := e.Aggregator.Assess(loc, opts)

	if boolQuery(c, "brief", false) && e.OpenAI != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()
		text, err := briefing.Generate(ctx, e.OpenAI, assessment)
		if err != nil {
			// Briefing is decoration; the assessment still goes out.
			log.Printf("briefing generation failed for %s: %v", loc.Key, err)
		} else {
			assessment.Briefing = text
		}
	}

	e.Events.Track("assessment", gin.H{"location": loc.Key, "score": assessment.Score})
	c.JSON(http.StatusOK, assessment)
}

func boolQuery(c *gin.Context, name string, fallback bool) bool {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
