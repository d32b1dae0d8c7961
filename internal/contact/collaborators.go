package contact

import "context"

// StatusAccepted is the only delivery status treated as success.
const StatusAccepted = 200

// Challenge is the bot-check widget bound to one visitor.
type Challenge interface {
	// Token returns the proof-of-human token, or "" when not yet verified.
	Token() string
	Reset()
}

// TokenVerifier optionally checks a token with the bot-check provider before dispatch.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) error
}

// Payload carries the template parameters sent to the delivery provider.
type Payload struct {
	FromName          string `json:"from_name"`
	FromEmail         string `json:"from_email"`
	Message           string `json:"message"`
	ToEmail           string `json:"to_email"`
	RecaptchaResponse string `json:"g-recaptcha-response"`
}

// Response is what the delivery provider answered.
type Response struct {
	Status int
	Text   string
}

// Sender is the external transactional email service.
type Sender interface {
	Send(ctx context.Context, serviceID, templateID string, payload Payload, authKey string) (Response, error)
}

// Notifier shows transient messages to the visitor.
type Notifier interface {
	NotifySuccess(message string)
	NotifyFailure(message string)
}

// Settings are the fixed delivery identifiers.
type Settings struct {
	ServiceID   string
	TemplateID  string
	AuthKey     string
	Destination string
}
