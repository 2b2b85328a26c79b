package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrSendFailed covers every delivery failure. Callers do not
	// distinguish network errors from non-OK responses.
	ErrSendFailed = errors.New("notification delivery failed")
)

// Notifier delivers a formatted alert to the store administrator.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// TelegramNotifier sends messages through the Telegram Bot API. Delivery is
// a single POST with no retry; a failed send is reported and otherwise
// forgotten.
type TelegramNotifier struct {
	endpoint string
	chatID   string
	client   *http.Client
	logger   *zap.Logger
}

// NewTelegramNotifier creates a notifier for the given bot token and
// recipient chat.
func NewTelegramNotifier(botToken, chatID string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		endpoint: fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", botToken),
		chatID:   chatID,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

type sendMessagePayload struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts an HTML-formatted message to the admin chat.
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	payload := sendMessagePayload{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("Notification request failed", zap.Error(err))
		return ErrSendFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		n.logger.Warn("Notification rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return ErrSendFailed
	}

	return nil
}
