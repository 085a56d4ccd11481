// Package notify provides SMS notification dispatch through an external provider.
package notify

import (
	"context"
	"strings"
)

// Dispatcher sends a text message to a single recipient on behalf of an originator.
// Implementations wrap a third-party SMS provider.
type Dispatcher interface {
	// Send delivers body to the phone number in international format.
	// Returns a *ProviderError if the provider rejected the message.
	Send(ctx context.Context, originator, phone, body string) error
}

// ProviderError is a structured provider-side rejection. Each description is
// a separate human-readable reason and is surfaced to the user individually.
type ProviderError struct {
	Descriptions []string
}

func (e *ProviderError) Error() string {
	return "sms provider rejected the message: " + strings.Join(e.Descriptions, "; ")
}
