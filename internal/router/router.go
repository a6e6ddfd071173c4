package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulsa-utsa/ulsa-backend/internal/config"
	"github.com/ulsa-utsa/ulsa-backend/internal/handler"
	"github.com/ulsa-utsa/ulsa-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Member *handler.MemberHandler
	System *handler.SystemHandler
}

// SetupRouter configures the Gin engine with CORS and all routes.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// The signup form is embedded in a public landing page, so the default
	// is allow-all with credentials. Set ALLOWED_ORIGINS to tighten.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS", "POST"}
	corsConfig.AllowHeaders = []string{"Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	// The form expects a 200 preflight, not Gin's default 204.
	corsConfig.OptionsResponseStatusCode = http.StatusOK
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally for log correlation.
	router.Use(response.RequestIDMiddleware())

	// ─── API ───────────────────────────────────────────────────────────
	api := router.Group("/api")
	{
		api.GET("/health", handlers.System.Health)
		api.GET("/databases", handlers.System.ListDatabases)

		api.POST("/members", handlers.Member.Register)
		api.GET("/members", handlers.Member.List)
	}

	return router
}
