package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetUKAdvisory serves GET /api/uk?country=<slug>.
func (e *Env) GetUKAdvisory(c *gin.Context) {
	loc, ok := e.resolveParam(c, "country")
	if !ok {
		return
	}

	rec, ok := e.Cache.Secondary(loc)
	if !ok {
		e.Events.Track("upstream_error", gin.H{"source": "uk_advisory", "country": loc.CountryKey})
		c.JSON(http.StatusBadGateway, gin.H{"error": "UK advisory data unavailable", "country": loc.Country})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"country":            rec.Country,
		"alert_status":       rec.AlertStatus,
		"change_description": rec.ChangeDescription,
		"last_updated":       rec.LastUpdated,
		"url":                rec.URL,
	})
}

// GetSentimentFeed serves GET /api/gdelt?location=<string>.
func (e *Env) GetSentimentFeed(c *gin.Context) {
	loc, ok := e.resolveParam(c, "location")
	if !ok {
		return
	}

	rec, ok := e.Cache.Sentiment(loc)
	if !ok {
		e.Events.Track("upstream_error", gin.H{"source": "sentiment", "location": loc.Key})
		c.JSON(http.StatusBadGateway, gin.H{"error": "news sentiment data unavailable", "location": loc.Name})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetConflict serves GET /api/acled?country=<string>.
func (e *Env) GetConflict(c *gin.Context) {
	loc, ok := e.resolveParam(c, "country")
	if !ok {
		return
	}

	rec, ok := e.Cache.Conflict(loc)
	if !ok {
		e.Events.Track("upstream_error", gin.H{"source": "conflict", "country": loc.CountryKey})
		c.JSON(http.StatusBadGateway, gin.H{"error": "conflict data unavailable", "country": loc.Country})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetAdvisory serves GET /api/advisory?country=<string>.
func (e *Env) GetAdvisory(c *gin.Context) {
	loc, ok := e.resolveParam(c, "country")
	if !ok {
		return
	}

	rec, ok := e.Cache.Advisory(loc)
	if !ok {
		e.Events.Track("upstream_error", gin.H{"source": "advisory", "country": loc.CountryKey})
		c.JSON(http.StatusBadGateway, gin.H{"error": "advisory data unavailable", "country": loc.Country})
		return
	}
	c.JSON(http.StatusOK, rec)
}
