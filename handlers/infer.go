package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostInferLocation serves POST /api/infer with body {text}. Best-effort:
// a miss is a 404, never a 500.
func (e *Env) PostInferLocation(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	loc, ok := e.Inferrer.InferLocation(body.Text)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no location recognized in text"})
		return
	}

	c.JSON(http.StatusOK, loc)
}
