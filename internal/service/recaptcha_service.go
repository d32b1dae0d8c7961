package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/config"
)

// RecaptchaWidget holds the token the visitor's reCAPTCHA widget produced.
// One widget belongs to one session.
type RecaptchaWidget struct {
	mu    sync.Mutex
	token string
}

func NewRecaptchaWidget() *RecaptchaWidget {
	return &RecaptchaWidget{}
}

// Set records the g-recaptcha-response posted with the form.
func (w *RecaptchaWidget) Set(token string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.token = strings.TrimSpace(token)
}

func (w *RecaptchaWidget) Token() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.token
}

func (w *RecaptchaWidget) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.token = ""
}

// RecaptchaService handles server-side reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	minScore  float64
	verifyURL string
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service
func NewRecaptchaService(cfg config.RecaptchaConfig) *RecaptchaService {
	return &RecaptchaService{
		secretKey: cfg.SecretKey,
		minScore:  cfg.MinScore,
		verifyURL: cfg.VerifyURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether a secret key is configured.
func (s *RecaptchaService) Enabled() bool {
	return s.secretKey != ""
}

// recaptchaResponse represents the response from Google's reCAPTCHA API
type recaptchaResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// VerifyToken verifies a reCAPTCHA token. The score is only checked when a
// minimum is configured, since v2 checkbox tokens carry none.
func (s *RecaptchaService) VerifyToken(ctx context.Context, token string) error {
	if s.secretKey == "" {
		return fmt.Errorf("%w: reCAPTCHA secret key", ErrNotConfigured)
	}

	if token == "" {
		return fmt.Errorf("%w: token is required", ErrVerificationFailed)
	}

	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create reCAPTCHA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to verify reCAPTCHA: %w", err)
	}
	defer resp.Body.Close()

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to parse reCAPTCHA response: %w", err)
	}

	if !result.Success {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, result.ErrorCodes)
	}

	if s.minScore > 0 && result.Score < s.minScore {
		return fmt.Errorf("%w: score too low: %.2f < %.2f", ErrVerificationFailed, result.Score, s.minScore)
	}

	return nil
}
