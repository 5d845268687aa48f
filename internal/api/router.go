// Package api wires the HTTP surface of the chart engine.
package api

import (
	"net/http"

	"vedic-chart/internal/api/handlers"
	"vedic-chart/internal/api/middleware"
	"vedic-chart/internal/config"
	"vedic-chart/internal/data"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with middleware and routes. places and cache may be nil.
func NewRouter(cfg *config.Config, places *data.PlaceList, cache *data.ChartCache, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Initialize handlers
	chartHandler := handlers.NewChartHandler(cfg.Engine, cache, places, logger)
	placesHandler := handlers.NewPlacesHandler(places)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cached_charts": cache.Len()})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/charts", chartHandler.CreateChart)
		v1.POST("/charts/batch", chartHandler.CreateBatch)
		v1.GET("/charts/:id", chartHandler.GetChart)

		v1.GET("/places", placesHandler.ListPlaces)
		v1.GET("/reference", handlers.GetReference)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
