package middleware

import (
	"github.com/kauhanhernandes/portfolio/internal/api/constants"
	"github.com/kauhanhernandes/portfolio/internal/session"
	"github.com/kauhanhernandes/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
)

// SessionConfig controls the visitor cookie.
type SessionConfig struct {
	MaxAge int
	Secure bool
}

// Session attaches the visitor's session, creating one (and its cookie) on first visit.
func Session(store *session.Store, cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(constants.CookieSession)

		s, created := store.GetOrCreate(id)
		if created {
			utils.SetSessionCookie(c, s.ID, cfg.MaxAge, cfg.Secure)
		}

		c.Set(constants.ContextKeySession, s)
		c.Next()
	}
}

// CurrentSession returns the session attached by Session.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(constants.ContextKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
