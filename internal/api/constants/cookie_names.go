package constants

// Cookie names used in the application
const (
	// Visitor session cookie (HttpOnly)
	CookieSession = "portfolio_session"

	// Cookie paths
	CookiePathRoot = "/" // Root path for cookies available throughout the site

	// Cookie duration in seconds
	CookieDuration24h = 86400 // 24 hours
)

// HTMX headers
const (
	HeaderHXRequest = "HX-Request"
	HeaderHXTrigger = "HX-Trigger"
)
