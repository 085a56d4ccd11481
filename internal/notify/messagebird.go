package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	messagebird "github.com/messagebird/go-rest-api/v9"
	"github.com/messagebird/go-rest-api/v9/sms"
)

// MessageBirdDispatcher sends SMS messages through the MessageBird REST API.
type MessageBirdDispatcher struct {
	client messagebird.Client
	logger *slog.Logger
}

// NewMessageBirdDispatcher creates a dispatcher authenticated with the given access key.
func NewMessageBirdDispatcher(accessKey string, logger *slog.Logger) *MessageBirdDispatcher {
	return &MessageBirdDispatcher{
		client: messagebird.New(accessKey),
		logger: logger.With("component", "notify"),
	}
}

// Send delivers a single SMS. Provider rejections are converted into a
// *ProviderError carrying one description per provider error. The send is
// never retried.
func (d *MessageBirdDispatcher) Send(ctx context.Context, originator, phone, body string) error {
	// The MessageBird client has no context support; honor cancellation before the call.
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := sms.Create(d.client, originator, []string{phone}, body, nil)
	if err != nil {
		var mbErr messagebird.ErrorResponse
		if errors.As(err, &mbErr) {
			descriptions := make([]string, 0, len(mbErr.Errors))
			for _, e := range mbErr.Errors {
				descriptions = append(descriptions, e.Description)
			}
			d.logger.WarnContext(ctx, "Provider rejected SMS", "phone", phone, "errors", descriptions)
			return &ProviderError{Descriptions: descriptions}
		}
		return fmt.Errorf("failed to send sms: %w", err)
	}

	d.logger.InfoContext(ctx, "SMS dispatched", slog.String("phone", phone))
	return nil
}
