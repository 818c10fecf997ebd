// Package notification holds the record of every composed notification.
package notification

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Log is a captured notification: subject, recipients and plain-text body.
// A Log is written before delivery is attempted, so it exists even when
// outbound sending is disabled or fails.
type Log struct {
	id         kernel.UUID
	subject    string
	recipients []string
	body       string
	createdAt  time.Time
}

// NewLog requires a subject, a body and at least one recipient.
func NewLog(id kernel.UUID, subject string, recipients []string, body string, createdAt time.Time) (*Log, error) {
	l := &Log{
		id:        id,
		subject:   strings.TrimSpace(subject),
		body:      body,
		createdAt: createdAt,
	}

	var errSubject, errRecipients, errBody, errAt error
	if l.subject == "" {
		errSubject = errs.NewValueIsRequiredError("subject")
	}
	for _, r := range recipients {
		if r = strings.TrimSpace(r); r != "" {
			l.recipients = append(l.recipients, r)
		}
	}
	if len(l.recipients) == 0 {
		errRecipients = errs.NewValueIsRequiredError("recipients")
	}
	if body == "" {
		errBody = errs.NewValueIsRequiredError("body")
	}
	if createdAt.IsZero() {
		errAt = errs.NewValueIsRequiredError("created at")
	}

	if err := errors.Join(id.Validate(), errSubject, errRecipients, errBody, errAt); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Log) ID() kernel.UUID { return l.id }
func (l *Log) Subject() string { return l.subject }
func (l *Log) Body() string { return l.body }
func (l *Log) CreatedAt() time.Time { return l.createdAt }

// Recipients returns a copy of the recipient addresses.
func (l *Log) Recipients() []string {
	out := make([]string, len(l.recipients))
	copy(out, l.recipients)
	return out
}
