package routes

import (
	"net/http"
	"strings"

	"github.com/kauhanhernandes/portfolio/internal/api/middleware"
	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/logging"
	"github.com/kauhanhernandes/portfolio/internal/web"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware, logger *logging.Logger) {
	router.StaticFS("/static", http.FS(web.Static()))

	SetupHealthRoutes(router, h.Health)

	v1 := router.Group("/api/v1")
	SetupCatalogRoutes(v1, h.Catalog)

	SetupPageRoutes(router, h.Page, m)
	SetupContactRoutes(router, v1, h.Contact, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(otelgin.Middleware(cfg.ServiceName, otelgin.WithFilter(func(r *http.Request) bool {
		return !strings.HasPrefix(r.URL.Path, "/static/") && r.URL.Path != "/health"
	})))
	router.Use(middleware.RequestLogger(logger, cfg.LogRequests))
	router.Use(middleware.CORS(cfg.AllowedOrigins, cfg.IsProduction()))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
}
