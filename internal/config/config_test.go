package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderEmailJS, cfg.Contact.Provider)
	assert.Equal(t, "kauhanhernandes@gmail.com", cfg.Contact.Destination)
	assert.Equal(t, "service_auvjtef", cfg.EmailJS.ServiceID)
	assert.Equal(t, "template_ih36ho8", cfg.EmailJS.TemplateID)
	assert.Equal(t, time.Duration(0), cfg.Contact.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.IsProduction())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CONTACT_PROVIDER", " SMTP ")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CONTACT_TIMEOUT", "15s")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ProviderSMTP, cfg.Contact.Provider)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.Contact.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown provider", func(c *Config) { c.Contact.Provider = "pigeon" }},
		{"missing destination", func(c *Config) { c.Contact.Destination = "" }},
		{"telegram without token", func(c *Config) { c.Contact.Provider = ProviderTelegram }},
		{"emailjs without key", func(c *Config) { c.EmailJS.PublicKey = "" }},
		{"zero burst", func(c *Config) { c.ContactBurst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
