// Package handler exposes the search service over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BuildInfo is reported by /health and /version
type BuildInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

// RegisterRoutes mounts the health, version and /api/v1 endpoints on router
func RegisterRoutes(router *gin.Engine, search *SearchHandler, feedback *FeedbackHandler, info BuildInfo) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "propsearch",
			"version":    info.Version,
			"build_time": info.BuildTime,
			"git_commit": info.GitCommit,
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, info)
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/search", search.SearchQuery)
		apiV1.POST("/search", search.Search)
		apiV1.POST("/search/stream", search.SearchStream)
		apiV1.POST("/parse", search.Parse)
		apiV1.GET("/properties/:slug", search.GetProperty)

		apiV1.POST("/feedback", feedback.Submit)
	}
}
