package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/linskybing/campus-helpdesk/internal/domain/outbox"
)

// WebhookDispatcher posts each event as JSON to a single endpoint, which fans
// out to email or chat.
type WebhookDispatcher struct {
	client *resty.Client
	url    string
}

func NewWebhookDispatcher(url string, timeout time.Duration) *WebhookDispatcher {
	return &WebhookDispatcher{
		client: resty.New().SetTimeout(timeout),
		url:    url,
	}
}

type webhookBody struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	Payload   json.RawMessage `json:"payload"`
}

func (d *WebhookDispatcher) Dispatch(ctx context.Context, e outbox.Event) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Idempotency-Key", e.ID).
		SetBody(webhookBody{
			ID:        e.ID,
			Type:      e.EventType,
			CreatedAt: e.CreatedAt,
			Payload:   json.RawMessage(e.Payload),
		}).
		Post(d.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned %d", resp.StatusCode())
	}
	return nil
}

// LogDispatcher only logs events. Used when no webhook is configured.
type LogDispatcher struct{}

func (LogDispatcher) Dispatch(ctx context.Context, e outbox.Event) error {
	slog.InfoContext(ctx, "outbox event", "event_id", e.ID, "event_type", e.EventType, "payload", string(e.Payload))
	return nil
}
