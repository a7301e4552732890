package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-tripsentry/analytics"
	"go-tripsentry/social"
)

// PostSubscribe serves POST /api/subscribe. "Already subscribed" upstream
// rejections come back as success.
func (e *Env) PostSubscribe(c *gin.Context) {
	var body struct {
		Email     string `json:"email"`
		TopicID   string `json:"topicId"`
		TopicName string `json:"topicName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	err := analytics.Subscribe(analytics.SubscribeRequest{
		Email:     body.Email,
		TopicID:   body.TopicID,
		TopicName: body.TopicName,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "subscribed"})
}

// PostTrack serves POST /api/track. Fire and forget: a malformed body still
// returns success so analytics never breaks the caller's flow.
func (e *Env) PostTrack(c *gin.Context) {
	var body struct {
		Event string                 `json:"event"`
		Data  map[string]interface{} `json:"data"`
	}
	if err := c.ShouldBindJSON(&body); err == nil && body.Event != "" {
		e.Events.Track(body.Event, body.Data)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSocialPulse serves GET /api/social?location=<string>.
func (e *Env) GetSocialPulse(c *gin.Context) {
	loc, ok := e.resolveParam(c, "location")
	if !ok {
		return
	}

	posts, err := social.FetchRecentPosts(c.Request.Context(), loc.Name, 10)
	if err != nil {
		e.Events.Track("upstream_error", gin.H{"source": "social", "location": loc.Key})
		c.JSON(http.StatusBadGateway, gin.H{"error": "social data unavailable", "location": loc.Name})
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": loc.Name, "posts": posts})
}
