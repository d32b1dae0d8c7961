package service

import (
	"fmt"

	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/contact"
	"github.com/kauhanhernandes/portfolio/internal/logging"
)

// NewSender picks the delivery provider named by CONTACT_PROVIDER and the
// identifiers the workflow passes to it.
func NewSender(cfg *config.Config) (contact.Sender, contact.Settings, error) {
	settings := contact.Settings{Destination: cfg.Contact.Destination}

	switch cfg.Contact.Provider {
	case config.ProviderEmailJS:
		settings.ServiceID = cfg.EmailJS.ServiceID
		settings.TemplateID = cfg.EmailJS.TemplateID
		settings.AuthKey = cfg.EmailJS.PublicKey
		return NewEmailJSService(cfg.EmailJS), settings, nil
	case config.ProviderSMTP:
		settings.ServiceID = config.ProviderSMTP
		return NewSMTPService(cfg.SMTP), settings, nil
	case config.ProviderTelegram:
		settings.ServiceID = config.ProviderTelegram
		return NewTelegramService(cfg.Telegram), settings, nil
	}

	return nil, settings, fmt.Errorf("%w: unknown contact provider %q", ErrNotConfigured, cfg.Contact.Provider)
}

// WorkflowOptions returns the contact workflow options implied by cfg.
// Server-side token verification is only enabled when a secret key is set.
func WorkflowOptions(cfg *config.Config, logger *logging.Logger) []contact.Option {
	opts := []contact.Option{contact.WithTimeout(cfg.Contact.Timeout)}
	if logger != nil {
		opts = append(opts, contact.WithLogger(logger))
	}
	if verifier := NewRecaptchaService(cfg.Recaptcha); verifier.Enabled() {
		opts = append(opts, contact.WithVerifier(verifier))
	}
	return opts
}
