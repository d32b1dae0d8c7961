package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/contact"
	"github.com/kauhanhernandes/portfolio/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func samplePayload() contact.Payload {
	return contact.Payload{
		FromName:          "Maria Silva",
		FromEmail:         "maria@example.com",
		Message:           "Olá, gostaria de conversar",
		ToEmail:           "kauhanhernandes@gmail.com",
		RecaptchaResponse: "tok-123",
	}
}

func TestEmailJSService_Send(t *testing.T) {
	var got emailJSRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	s := NewEmailJSService(config.EmailJSConfig{Endpoint: srv.URL, PrivateKey: "priv"})
	resp, err := s.Send(context.Background(), "service_auvjtef", "template_ih36ho8", samplePayload(), "el4ZwZ0FP5UayapwI")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "OK", resp.Text)
	assert.Equal(t, "service_auvjtef", got.ServiceID)
	assert.Equal(t, "template_ih36ho8", got.TemplateID)
	assert.Equal(t, "el4ZwZ0FP5UayapwI", got.UserID)
	assert.Equal(t, "priv", got.AccessToken)
	assert.Equal(t, samplePayload(), got.TemplateParams)
}

func TestEmailJSService_SendNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	defer srv.Close()

	s := NewEmailJSService(config.EmailJSConfig{Endpoint: srv.URL})
	resp, err := s.Send(context.Background(), "svc", "tpl", samplePayload(), "key")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "The template ID is invalid", resp.Text)
}

func TestEmailJSService_SendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := NewEmailJSService(config.EmailJSConfig{Endpoint: srv.URL})
	_, err := s.Send(context.Background(), "svc", "tpl", samplePayload(), "key")
	assert.Error(t, err)
}

func TestEmailJSService_MissingKey(t *testing.T) {
	s := NewEmailJSService(config.EmailJSConfig{Endpoint: "http://unused"})
	_, err := s.Send(context.Background(), "svc", "tpl", samplePayload(), "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMTPService_Send(t *testing.T) {
	s := NewSMTPService(config.SMTPConfig{Host: "smtp.test", Port: 587, Username: "bot@test", Password: "pw"})

	var sent *gomail.Message
	s.sendFunc = func(m *gomail.Message) error {
		sent = m
		return nil
	}

	resp, err := s.Send(context.Background(), "smtp", "", samplePayload(), "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	require.NotNil(t, sent)
	assert.Equal(t, []string{"bot@test"}, sent.GetHeader("From"))
	assert.Equal(t, []string{"kauhanhernandes@gmail.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"maria@example.com"}, sent.GetHeader("Reply-To"))
}

func TestSMTPService_SendError(t *testing.T) {
	s := NewSMTPService(config.SMTPConfig{Host: "smtp.test", Port: 587, Username: "u", Password: "p"})
	s.sendFunc = func(m *gomail.Message) error { return errors.New("connection refused") }

	_, err := s.Send(context.Background(), "", "", samplePayload(), "")
	assert.ErrorContains(t, err, "connection refused")
}

func TestSMTPService_ContextCancelled(t *testing.T) {
	s := NewSMTPService(config.SMTPConfig{Host: "smtp.test", Port: 587, Username: "u", Password: "p"})
	release := make(chan struct{})
	defer close(release)
	s.sendFunc = func(m *gomail.Message) error {
		<-release
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.Send(ctx, "", "", samplePayload(), "")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSMTPService_NotConfigured(t *testing.T) {
	s := NewSMTPService(config.SMTPConfig{Host: "smtp.test", Port: 587})
	_, err := s.Send(context.Background(), "", "", samplePayload(), "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTelegramService_Send(t *testing.T) {
	var got telegramMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewTelegramService(config.TelegramConfig{BotToken: "TOKEN", ChatID: "42", APIURL: srv.URL + "/"})
	p := samplePayload()
	p.Message = "<script>alert(1)</script>"

	resp, err := s.Send(context.Background(), "telegram", "", p, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "HTML", got.ParseMode)
	assert.Contains(t, got.Text, "Maria Silva")
	assert.Contains(t, got.Text, "&lt;script&gt;")
	assert.NotContains(t, got.Text, "<script>")
}

func TestTelegramService_NotConfigured(t *testing.T) {
	s := NewTelegramService(config.TelegramConfig{APIURL: "http://unused"})
	_, err := s.Send(context.Background(), "", "", samplePayload(), "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestRecaptchaService_VerifyToken(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		minScore float64
		wantErr  bool
	}{
		{"success", `{"success":true}`, 0, false},
		{"rejected", `{"success":false,"error-codes":["invalid-input-response"]}`, 0, true},
		{"score ok", `{"success":true,"score":0.9}`, 0.5, false},
		{"score too low", `{"success":true,"score":0.1}`, 0.5, true},
		{"bad json", `not json`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, r.ParseForm())
				assert.Equal(t, "secret", r.PostForm.Get("secret"))
				assert.Equal(t, "tok", r.PostForm.Get("response"))
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := NewRecaptchaService(config.RecaptchaConfig{SecretKey: "secret", MinScore: tt.minScore, VerifyURL: srv.URL})
			err := s.VerifyToken(context.Background(), "tok")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecaptchaService_NotConfigured(t *testing.T) {
	s := NewRecaptchaService(config.RecaptchaConfig{VerifyURL: "http://unused"})
	assert.False(t, s.Enabled())
	assert.ErrorIs(t, s.VerifyToken(context.Background(), "tok"), ErrNotConfigured)
}

func TestRecaptchaService_EmptyToken(t *testing.T) {
	s := NewRecaptchaService(config.RecaptchaConfig{SecretKey: "s", VerifyURL: (&url.URL{Scheme: "http", Host: "unused"}).String()})
	assert.ErrorIs(t, s.VerifyToken(context.Background(), ""), ErrVerificationFailed)
}

func TestRecaptchaWidget(t *testing.T) {
	w := NewRecaptchaWidget()
	assert.Empty(t, w.Token())

	w.Set("  tok-1 ")
	assert.Equal(t, "tok-1", w.Token())

	w.Reset()
	assert.Empty(t, w.Token())
}

func TestNewSender(t *testing.T) {
	cfg := &config.Config{
		Contact: config.ContactConfig{Provider: config.ProviderEmailJS, Destination: "dest@example.com"},
		EmailJS: config.EmailJSConfig{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pub"},
	}

	sender, settings, err := NewSender(cfg)
	require.NoError(t, err)
	assert.IsType(t, &EmailJSService{}, sender)
	assert.Equal(t, contact.Settings{ServiceID: "svc", TemplateID: "tpl", AuthKey: "pub", Destination: "dest@example.com"}, settings)

	cfg.Contact.Provider = config.ProviderSMTP
	sender, _, err = NewSender(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SMTPService{}, sender)

	cfg.Contact.Provider = config.ProviderTelegram
	sender, _, err = NewSender(cfg)
	require.NoError(t, err)
	assert.IsType(t, &TelegramService{}, sender)

	cfg.Contact.Provider = "pigeon"
	_, _, err = NewSender(cfg)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestWorkflowOptions(t *testing.T) {
	cfg := &config.Config{}
	assert.Len(t, WorkflowOptions(cfg, nil), 1)
	assert.Len(t, WorkflowOptions(cfg, logging.Discard()), 2)

	cfg.Recaptcha.SecretKey = "secret"
	assert.Len(t, WorkflowOptions(cfg, nil), 2)
}
