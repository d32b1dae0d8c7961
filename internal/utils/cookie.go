package utils

import (
	"net/http"

	"github.com/kauhanhernandes/portfolio/internal/api/constants"

	"github.com/gin-gonic/gin"
)

// SetSessionCookie writes the visitor session cookie.
func SetSessionCookie(c *gin.Context, id string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.CookieSession, id, maxAge, constants.CookiePathRoot, "", secure, true)
}
