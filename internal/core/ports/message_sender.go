package ports

import "context"

// Message is an outbound plain-text notification.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// MessageSender delivers messages over some transport (email, SMS, log).
type MessageSender interface {
	Send(ctx context.Context, msg Message) error
}
