// Package worker registers background-style handlers on the event
// dispatcher.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pigsheadbbq/site/internal/events"
)

// StartSubscriptionForwarder registers a handler that posts every new
// subscription to the configured webhook. Delivery failures are logged and
// never surfaced to the subscriber; the signup is already on disk by the time
// the event fires. A blank webhookURL disables forwarding.
func StartSubscriptionForwarder(dispatcher events.Dispatcher, webhookURL string, timeout time.Duration, logger *zap.Logger) {
	if dispatcher == nil || webhookURL == "" {
		return
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := &http.Client{Timeout: timeout}

	dispatcher.Subscribe(events.EventSubscriptionCreated, func(ctx context.Context, event events.Event) error {
		if err := forward(ctx, client, webhookURL, event.Payload); err != nil {
			logger.Warn("subscription forward failed",
				zap.String("webhook_url", webhookURL),
				zap.String("subscription_id", event.ID),
				zap.Error(err))
			return err
		}
		return nil
	})
}

func forward(ctx context.Context, client *http.Client, webhookURL string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
