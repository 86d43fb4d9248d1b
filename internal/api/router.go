package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengzang/stopsearch-backend-go/internal/config"
	"github.com/jengzang/stopsearch-backend-go/internal/handler"
	"github.com/jengzang/stopsearch-backend-go/internal/middleware"
	"github.com/jengzang/stopsearch-backend-go/internal/query"
	"github.com/jengzang/stopsearch-backend-go/internal/repository"
	"github.com/jengzang/stopsearch-backend-go/internal/service"
	"github.com/jengzang/stopsearch-backend-go/pkg/response"
)

// SetupRouter wires every route against repo. Only GET is served; other methods get 405.
func SetupRouter(cfg *config.Config, repo *repository.StopSearchRepository) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.NoMethod(response.MethodNotAllowed)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Stop and search API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cache := query.NewCountCache(cfg.CountCacheTTL, nil)
	policeData := handler.NewPoliceDataHandler(
		service.NewListingService(repo, cache),
		service.NewMapService(repo, cache),
		service.NewAnalyticsService(repo),
	)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateWindow))
	{
		data := api.Group("/police-data")
		{
			data.GET("", policeData.List)
			data.GET("/map", policeData.Map)
			data.GET("/clusters", policeData.Clusters)
			data.GET("/map-view", policeData.MapView)
			data.GET("/analytics", policeData.Analytics)
		}
	}

	return r
}
