package routes

import (
	"github.com/kauhanhernandes/portfolio/internal/api/handlers"
	"github.com/kauhanhernandes/portfolio/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.Engine, v1 *gin.RouterGroup, contact *handlers.ContactHandler, m *Middleware) {
	limit := middleware.LimitRequestBody(middleware.DefaultMaxBodySize)

	form := router.Group("/contact", limit, m.Session)
	{
		// Field hints are cheap and not rate limited
		form.POST("/fields/:field", contact.Field)
		form.POST("", m.RateLimit.Middleware(), contact.Submit)
	}

	v1.POST("/contact/submit",
		limit,
		m.RateLimit.Middleware(),
		m.Session,
		m.Validation.ValidateContactRequest(),
		contact.SubmitAPI,
	)
}
