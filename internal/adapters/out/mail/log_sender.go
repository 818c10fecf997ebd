// Package mail contains outbound message senders.
package mail

import (
	"context"
	"log/slog"
	"strings"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

var _ ports.MessageSender = (*LogSender)(nil)

// LogSender writes every message to the structured log instead of a mail
// server. It is the default transport for local and test environments.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "mail_log_sender")}
}

func (s *LogSender) Send(ctx context.Context, msg ports.Message) error {
	if len(msg.To) == 0 {
		return errs.NewValueIsRequiredError("recipients")
	}

	s.logger.InfoContext(ctx, "Sending message",
		"from", msg.From,
		"to", strings.Join(msg.To, ","),
		"subject", msg.Subject,
	)
	s.logger.DebugContext(ctx, "Message body", "subject", msg.Subject, "body", msg.Body)
	return nil
}
