package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-tripsentry/handlers"
)

// corsMiddleware answers every request with permissive CORS headers; the
// widget is served from a different origin. OPTIONS gets headers, no body.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func SetupRouter(env *handlers.Env) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "tripsentry travel-safety API",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/advisory", env.GetAdvisory)
		api.GET("/uk", env.GetUKAdvisory)
		api.GET("/gdelt", env.GetSentimentFeed)
		api.GET("/acled", env.GetConflict)
		api.GET("/assessment", env.GetAssessment)
		api.GET("/social", env.GetSocialPulse)
		api.GET("/sentiment", env.GetCommunitySentiment)
		api.POST("/sentiment", env.PostCommunityVote)
		api.POST("/subscribe", env.PostSubscribe)
		api.POST("/track", env.PostTrack)
		api.POST("/infer", env.PostInferLocation)
	}

	return r
}
