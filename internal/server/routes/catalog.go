package routes

import (
	"github.com/kauhanhernandes/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes exposes the portfolio content as JSON
func SetupCatalogRoutes(v1 *gin.RouterGroup, catalog *handlers.CatalogHandler) {
	v1.GET("/catalog", catalog.Get)
}
