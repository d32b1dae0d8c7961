package handlers

import (
	"net/http"

	"github.com/kauhanhernandes/portfolio/internal/api/constants"
	"github.com/kauhanhernandes/portfolio/internal/api/dto/common"
	"github.com/kauhanhernandes/portfolio/internal/api/middleware"
	"github.com/kauhanhernandes/portfolio/internal/session"

	"github.com/gin-gonic/gin"
)

// isHTMX reports whether the request came from an HTMX swap.
func isHTMX(c *gin.Context) bool {
	return c.GetHeader(constants.HeaderHXRequest) == "true"
}

// requireSession returns the visitor session or aborts with 500.
func requireSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, common.NewErrorResponse(
			common.ErrCodeInternalServer, "Session not found in context", nil,
		))
		return nil, false
	}
	return s, true
}
