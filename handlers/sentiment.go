package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-tripsentry/community"
)

func sentimentPayload(c community.Counters) gin.H {
	return gin.H{
		"safe":         c.Safe(),
		"unsafe":       c.Unsafe(),
		"seededSafe":   c.SeededSafe,
		"seededUnsafe": c.SeededUnsafe,
		"realSafe":     c.RealSafe,
		"realUnsafe":   c.RealUnsafe,
		"total":        c.Total(),
		"safePercent":  c.SafePercent(),
	}
}

// GetCommunitySentiment serves GET /api/sentiment?location=<string>.
func (e *Env) GetCommunitySentiment(c *gin.Context) {
	loc, ok := e.resolveParam(c, "location")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sentimentPayload(e.Community.Get(loc.Key)))
}

// PostCommunityVote serves POST /api/sentiment?location=<string> with body
// {vote: "safe"|"unsafe"}. Votes are honor-system; the server does not
// identify voters.
func (e *Env) PostCommunityVote(c *gin.Context) {
	loc, ok := e.resolveParam(c, "location")
	if !ok {
		return
	}

	var body struct {
		Vote string `json:"vote"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	counters, err := e.Community.Vote(loc.Key, body.Vote)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": `vote must be "safe" or "unsafe"`})
		return
	}

	e.Events.Track("vote", gin.H{"location": loc.Key, "vote": body.Vote})
	c.JSON(http.StatusOK, sentimentPayload(counters))
}
