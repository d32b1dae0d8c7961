package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/kauhanhernandes/portfolio/internal/config"
	"github.com/kauhanhernandes/portfolio/internal/contact"
)

// TelegramService forwards contact messages to a Telegram chat
type TelegramService struct {
	botToken string
	chatID   string
	apiURL   string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service
func NewTelegramService(cfg config.TelegramConfig) *TelegramService {
	return &TelegramService{
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		apiURL:   strings.TrimRight(cfg.APIURL, "/"),
		client:   &http.Client{},
	}
}

// telegramMessage represents a Telegram API message
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// Send posts the contact message to the configured chat.
func (s *TelegramService) Send(ctx context.Context, serviceID, templateID string, payload contact.Payload, authKey string) (contact.Response, error) {
	if s.botToken == "" || s.chatID == "" {
		return contact.Response{}, fmt.Errorf("%w: telegram bot token or chat ID", ErrNotConfigured)
	}

	text := fmt.Sprintf(
		"🆕 <b>Nova mensagem do portfólio</b>\n\n"+
			"<b>Nome:</b> %s\n"+
			"<b>Email:</b> %s\n"+
			"<b>Mensagem:</b>\n%s",
		escapeHTML(payload.FromName),
		escapeHTML(payload.FromEmail),
		escapeHTML(payload.Message),
	)

	jsonData, err := json.Marshal(telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return contact.Response{}, fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return contact.Response{}, fmt.Errorf("failed to create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return contact.Response{}, fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	return contact.Response{Status: resp.StatusCode}, nil
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes HTML special characters for Telegram
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
