package routes

import (
	"github.com/kauhanhernandes/portfolio/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPageRoutes configures the page and section partial routes
func SetupPageRoutes(router *gin.Engine, page *handlers.PageHandler, m *Middleware) {
	router.GET("/", m.Session, page.Index)
	router.GET("/sections/:tab", m.Session, page.Section)
}
