package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hakjeomlab/curricheck-backend/internal/config"
	"github.com/hakjeomlab/curricheck-backend/internal/handler"
	"github.com/hakjeomlab/curricheck-backend/internal/middleware"
	"github.com/hakjeomlab/curricheck-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Dataset *handler.DatasetHandler
	Report  *handler.ReportHandler
	Prereq  *handler.PrereqHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Brotli everywhere except the .xlsx export, which is already deflated.
	router.Use(middleware.BrotliWithConfig(middleware.BrotliConfig{
		Skipper: func(c *gin.Context) bool {
			return strings.HasSuffix(c.FullPath(), "/report/export")
		},
	}))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── API v1 ────────────────────────────────────────────────────────
	api := router.Group("/api/v1")
	{
		// Dataset lifecycle
		api.POST("/datasets", handlers.Dataset.Upload)
		api.GET("/datasets", handlers.Dataset.List)
		api.DELETE("/datasets/:id", handlers.Dataset.Delete)

		// Reports. Exports are deterministic for an unchanged dataset, so a
		// short client cache is safe.
		api.GET("/datasets/:id/report", handlers.Report.GetReport)
		api.GET("/datasets/:id/report/export", middleware.CacheControl(60), handlers.Report.ExportReport)
		api.GET("/datasets/:id/summary", handlers.Report.GetSummary)

		// Prerequisite reference table
		api.GET("/prerequisites", handlers.Prereq.List)
		api.PUT("/prerequisites", handlers.Prereq.Replace)
	}

	return router
}
