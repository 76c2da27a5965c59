package http

import (
	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Pair symbols arrive URL-escaped ("EUR%2FUSD") and must match :symbol.
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(RequestID())

	api := router.Group("/api/v1")
	{
		api.GET("/quote/:symbol", handler.GetQuote)
		api.GET("/history/:symbol", handler.GetHistory)
		api.GET("/earnings/:symbol", handler.GetEarnings)
		api.GET("/search", handler.Search)
		api.GET("/intervals", handler.GetIntervals)
	}

	router.GET("/health", handler.Health)
	router.NoRoute(handler.NoRoute)
}
