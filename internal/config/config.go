package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Delivery providers
const (
	ProviderEmailJS  = "emailjs"
	ProviderSMTP     = "smtp"
	ProviderTelegram = "telegram"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"8080"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string   `env:"LOG_FILE"`
	LogRequests    bool     `env:"LOG_REQUESTS" envDefault:"false"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	AssetsDir      string   `env:"ASSETS_DIR" envDefault:"public/imgs"`

	// Session Configuration
	SessionTTL             time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"`
	SecureCookies          bool          `env:"SECURE_COOKIES" envDefault:"false"`

	// Contact rate limit, per client IP
	ContactRPS   float64 `env:"CONTACT_RATE_RPS" envDefault:"0.2"`
	ContactBurst int     `env:"CONTACT_RATE_BURST" envDefault:"5"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"portfolio"`

	Contact   ContactConfig   `envPrefix:"CONTACT_"`
	Recaptcha RecaptchaConfig `envPrefix:"RECAPTCHA_"`
	EmailJS   EmailJSConfig   `envPrefix:"EMAILJS_"`
	SMTP      SMTPConfig      `envPrefix:"SMTP_"`
	Telegram  TelegramConfig  `envPrefix:"TELEGRAM_"`
}

// ContactConfig selects the delivery provider and the fixed destination.
type ContactConfig struct {
	Provider    string `env:"PROVIDER" envDefault:"emailjs"`
	Destination string `env:"DESTINATION" envDefault:"kauhanhernandes@gmail.com"`
	// Zero means the send is bounded only by the provider.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`
}

type RecaptchaConfig struct {
	SiteKey   string  `env:"SITE_KEY" envDefault:"6LfdOP0qAAAAAMhwOC6fpILAFlEy1Ji1lncgsjnf"`
	SecretKey string  `env:"SECRET_KEY"`
	MinScore  float64 `env:"MIN_SCORE" envDefault:"0"`
	VerifyURL string  `env:"VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
}

type EmailJSConfig struct {
	ServiceID  string `env:"SERVICE_ID" envDefault:"service_auvjtef"`
	TemplateID string `env:"TEMPLATE_ID" envDefault:"template_ih36ho8"`
	PublicKey  string `env:"PUBLIC_KEY" envDefault:"el4ZwZ0FP5UayapwI"`
	PrivateKey string `env:"PRIVATE_KEY"`
	Endpoint   string `env:"ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
}

type SMTPConfig struct {
	Host     string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USER"`
	Password string `env:"PASS"`
	From     string `env:"FROM"`
	UseTLS   bool   `env:"USE_TLS" envDefault:"false"`
}

type TelegramConfig struct {
	BotToken string `env:"BOT_TOKEN"`
	ChatID   string `env:"CHAT_ID"`
	APIURL   string `env:"API_URL" envDefault:"https://api.telegram.org"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overwrites variables that are already set
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Contact.Provider = strings.ToLower(strings.TrimSpace(cfg.Contact.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	return cfg, nil
}

// Validate checks that the selected delivery provider has what it needs.
func (c *Config) Validate() error {
	if c.Contact.Destination == "" {
		return fmt.Errorf("CONTACT_DESTINATION is required")
	}

	switch c.Contact.Provider {
	case ProviderEmailJS:
		if c.EmailJS.ServiceID == "" || c.EmailJS.TemplateID == "" || c.EmailJS.PublicKey == "" {
			return fmt.Errorf("emailjs provider requires EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and EMAILJS_PUBLIC_KEY")
		}
	case ProviderSMTP:
		if c.SMTP.Host == "" || c.SMTP.Port <= 0 {
			return fmt.Errorf("smtp provider requires SMTP_HOST and SMTP_PORT")
		}
	case ProviderTelegram:
		if c.Telegram.BotToken == "" || c.Telegram.ChatID == "" {
			return fmt.Errorf("telegram provider requires TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
		}
	default:
		return fmt.Errorf("unknown contact provider: %q", c.Contact.Provider)
	}

	if c.ContactRPS <= 0 || c.ContactBurst <= 0 {
		return fmt.Errorf("contact rate limit must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
