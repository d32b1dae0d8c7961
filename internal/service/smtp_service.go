package service

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/contact"

	"gopkg.in/gomail.v2"
)

// SMTPService delivers contact messages straight to a mailbox.
type SMTPService struct {
	cfg      config.SMTPConfig
	sendFunc func(m *gomail.Message) error
}

// NewSMTPService creates a new SMTP sender
func NewSMTPService(cfg config.SMTPConfig) *SMTPService {
	s := &SMTPService{cfg: cfg}
	s.sendFunc = func(m *gomail.Message) error {
		d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
		d.SSL = cfg.UseTLS
		if cfg.UseTLS {
			d.TLSConfig = &tls.Config{ServerName: cfg.Host}
		}
		return d.DialAndSend(m)
	}
	return s
}

// Send ignores serviceID, templateID and authKey, which only mean something to
// hosted template services. An accepted message is reported as status 200.
func (s *SMTPService) Send(ctx context.Context, serviceID, templateID string, payload contact.Payload, authKey string) (contact.Response, error) {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return contact.Response{}, fmt.Errorf("%w: SMTP credentials", ErrNotConfigured)
	}

	msg := buildContactMessage(s.from(), payload)

	done := make(chan error, 1)
	go func() {
		done <- s.sendFunc(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return contact.Response{}, fmt.Errorf("failed to send smtp message: %w", err)
		}
		return contact.Response{Status: http.StatusOK, Text: "OK"}, nil
	case <-ctx.Done():
		return contact.Response{}, ctx.Err()
	}
}

func (s *SMTPService) from() string {
	if s.cfg.From != "" {
		return s.cfg.From
	}
	return s.cfg.Username
}

func buildContactMessage(from string, p contact.Payload) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", p.ToEmail)
	m.SetHeader("Reply-To", p.FromEmail)
	m.SetHeader("Subject", fmt.Sprintf("Contato pelo portfólio: %s", p.FromName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Nova mensagem enviada pelo formulário do portfólio:\n\nNome: %s\nEmail: %s\nMensagem:\n%s\n",
		p.FromName, p.FromEmail, p.Message,
	))
	return m
}
