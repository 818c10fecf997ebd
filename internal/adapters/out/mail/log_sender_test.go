package mail_test

import (
	"bytes"
	"log/slog"
	"testing"

	"ordering/internal/adapters/out/mail"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sender := mail.NewLogSender(logger)

	err := sender.Send(t.Context(), ports.Message{
		From:    "orders@example.com",
		To:      []string{"alice@example.com", "bob@example.com"},
		Subject: "Order 1 approved",
		Body:    "Your order has been approved.",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"component":"mail_log_sender"`)
	assert.Contains(t, out, `"to":"alice@example.com,bob@example.com"`)
	assert.Contains(t, out, "Your order has been approved.")
}

func TestLogSender_Send_NoRecipients(t *testing.T) {
	sender := mail.NewLogSender(slog.New(slog.DiscardHandler))

	err := sender.Send(t.Context(), ports.Message{Subject: "x"})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
