package routes

import (
	"github.com/kauhanhernandes/portfolio/internal/api/handlers"
	"github.com/kauhanhernandes/portfolio/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers contains all the route handlers
type Handlers struct {
	Page    *handlers.PageHandler
	Contact *handlers.ContactHandler
	Catalog *handlers.CatalogHandler
	Health  *handlers.HealthHandler
}

// Middleware contains the route-scoped middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
	RateLimit  *middleware.RateLimiter
	Session    gin.HandlerFunc
}
