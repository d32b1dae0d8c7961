package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/contact"
)

// EmailJSService sends template emails through the EmailJS REST API.
type EmailJSService struct {
	endpoint   string
	privateKey string
	client     *http.Client
}

// NewEmailJSService creates a new EmailJS client
func NewEmailJSService(cfg config.EmailJSConfig) *EmailJSService {
	return &EmailJSService{
		endpoint:   cfg.Endpoint,
		privateKey: cfg.PrivateKey,
		client:     &http.Client{},
	}
}

// emailJSRequest is the body of POST /api/v1.0/email/send
type emailJSRequest struct {
	ServiceID      string          `json:"service_id"`
	TemplateID     string          `json:"template_id"`
	UserID         string          `json:"user_id"`
	AccessToken    string          `json:"accessToken,omitempty"`
	TemplateParams contact.Payload `json:"template_params"`
}

// Send posts the template parameters. A non-200 answer is returned as a
// response, not an error; only transport failures are errors.
func (s *EmailJSService) Send(ctx context.Context, serviceID, templateID string, payload contact.Payload, authKey string) (contact.Response, error) {
	if authKey == "" {
		return contact.Response{}, fmt.Errorf("%w: emailjs public key", ErrNotConfigured)
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         authKey,
		AccessToken:    s.privateKey,
		TemplateParams: payload,
	})
	if err != nil {
		return contact.Response{}, fmt.Errorf("failed to marshal emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return contact.Response{}, fmt.Errorf("failed to create emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return contact.Response{}, fmt.Errorf("failed to send emailjs request: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return contact.Response{Status: resp.StatusCode}, fmt.Errorf("failed to read emailjs response: %w", err)
	}

	return contact.Response{Status: resp.StatusCode, Text: string(text)}, nil
}
