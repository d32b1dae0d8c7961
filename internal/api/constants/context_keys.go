package constants

// Context keys for values stored on the gin context
const (
	// Request context keys
	ContextKeyRequestID = "RequestID"
	ContextKeySession   = "session"

	// Contact context keys
	ContextKeyContact = "contact"
)
