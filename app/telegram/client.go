package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrMissingCredentials is returned when the bot token or chat ID is not
// configured. The check happens before any network call.
var ErrMissingCredentials = errors.New("telegram credentials are not configured")

// Client delivers notifications through the Telegram Bot API.
type Client struct {
	token  string
	chatID string
	client *http.Client
	apiURL string
}

// NewClient creates a client. Credentials are validated on Send, not here,
// so a run with nothing to deliver succeeds without them.
func NewClient(token, chatID string, timeout time.Duration) *Client {
	return &Client{
		token:  token,
		chatID: chatID,
		client: &http.Client{
			Timeout: timeout,
		},
		apiURL: fmt.Sprintf("https://api.telegram.org/bot%s", token),
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// Send posts a sendMessage call. Any non-success outcome is an error;
// the caller treats it as fatal to the run.
func (c *Client) Send(ctx context.Context, text string) error {
	if c.token == "" || c.chatID == "" {
		return fmt.Errorf("%w: set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID", ErrMissingCredentials)
	}

	payload := sendMessageRequest{
		ChatID:                c.chatID,
		Text:                  text,
		DisableWebPagePreview: false,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/sendMessage", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram api status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}

	return nil
}
