package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-tripsentry/aggregator"
	"go-tripsentry/analytics"
	"go-tripsentry/cache"
	"go-tripsentry/community"
	"go-tripsentry/gazetteer"
	"go-tripsentry/infer"
	"go-tripsentry/types"
)

// Env carries the injected collaborators for all handlers; nothing here is
// a package-level singleton so tests can build a clean Env per case.
type Env struct {
	Gazetteer  *gazetteer.Gazetteer
	Cache      *cache.Cache
	Aggregator *aggregator.Aggregator
	Community  *community.Service
	Events     *analytics.Log
	OpenAI     *openai.Client
	Inferrer   *infer.Inferrer
}

// resolveParam resolves a query parameter against the gazetteer, writing
// the 400/404 response itself when resolution fails.
func (e *Env) resolveParam(c *gin.Context, param string) (types.Location, bool) {
	q := c.Query(param)
	if q == "" {
		c.JSON(400, gin.H{"error": "missing required query parameter: " + param})
		return types.Location{}, false
	}

	loc, ok := e.Gazetteer.Resolve(q)
	if !ok {
		c.JSON(404, gin.H{"error": "unknown location: " + q})
		return types.Location{}, false
	}
	return loc, true
}
