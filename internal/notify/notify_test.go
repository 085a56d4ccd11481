package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderErrorMessage(t *testing.T) {
	err := &ProviderError{Descriptions: []string{"authentication failed", "no (correct) recipients found"}}
	assert.Equal(t, "sms provider rejected the message: authentication failed; no (correct) recipients found", err.Error())
}

func TestSendHonorsCancelledContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := NewMessageBirdDispatcher("test_key", logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := dispatcher.Send(ctx, "OmNomNom", "+319876543210", "hello")
	require.ErrorIs(t, err, context.Canceled)
}
