package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// TelegramNotifier pushes reminder messages through a Telegram bot.
// Disabled (silently logging instead) unless both env vars are set.
type TelegramNotifier struct {
	botToken string
	chatID   string
	enabled  bool
	client   *http.Client
}

func NewTelegramNotifierFromEnv() *TelegramNotifier {
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		enabled:  botToken != "" && chatID != "",
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
	}
}

func (notifier *TelegramNotifier) Enabled() bool {
	return notifier.enabled
}

func (notifier *TelegramNotifier) Notify(ctx context.Context, userID uint, message string) error {
	if !notifier.enabled {
		log.Printf("notify (user %d): %s", userID, message)
		return nil
	}

	values := url.Values{}
	values.Set("chat_id", notifier.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", notifier.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := notifier.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
