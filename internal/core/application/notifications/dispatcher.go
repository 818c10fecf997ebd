package notifications

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/notification"
	"ordering/internal/core/ports"
)

// Properties configures notification delivery.
type Properties struct {
	// Enabled turns outbound sending on. Logs are captured either way.
	Enabled bool
	// FromAddress is the sender of outbound messages.
	FromAddress string
	// CopyApproversOnCreation adds every approver to order creation notifications.
	CopyApproversOnCreation bool
}

type (
	// Repositories gives the dispatcher access to recipients and the notification log.
	Repositories interface {
		UserRepository() ports.UserRepository
		NotificationLogRepository() ports.NotificationLogRepository
	}

	// RepositoriesFactory creates Repositories outside of any transaction.
	RepositoriesFactory interface {
		Create() Repositories
	}
)

// Dispatcher resolves recipients, records a notification log entry and hands
// the message to the sender. It never returns an error: every failure is
// logged at warn level, with the full error at debug level, and swallowed.
type Dispatcher struct {
	repos  RepositoriesFactory
	sender ports.MessageSender
	props  Properties
	clock  func() time.Time
	logger *slog.Logger
}

func NewDispatcher(
	repos RepositoriesFactory,
	sender ports.MessageSender,
	props Properties,
	clock func() time.Time,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		repos:  repos,
		sender: sender,
		props:  props,
		clock:  clock,
		logger: logger.With("component", "notification_dispatcher"),
	}
}

// Notify emits the summary of view for event.
func (d *Dispatcher) Notify(ctx context.Context, event Event, view readmodel.OrderView) {
	repos := d.repos.Create()
	subject := Subject(event, view.ID)

	recipients := d.recipients(ctx, repos, event, view)
	if len(recipients) == 0 {
		d.logger.DebugContext(ctx, "Skipping notification because no recipients were resolved",
			"subject", subject, "order_id", view.ID.String())
		return
	}

	body := ComposeSummary(Intro(event), view)

	entry, err := notification.NewLog(kernel.NewUUID(), subject, recipients, body, d.clock())
	if err == nil {
		err = repos.NotificationLogRepository().Add(ctx, entry)
	}
	if err != nil {
		d.logger.WarnContext(ctx, "Unable to record notification log",
			"subject", subject, "order_id", view.ID.String(), "error", err.Error())
	}

	if !d.props.Enabled {
		d.logger.DebugContext(ctx, "Notifications disabled, captured log entry", "subject", subject)
		return
	}

	msg := ports.Message{
		From:    d.props.FromAddress,
		To:      recipients,
		Subject: subject,
		Body:    body,
	}
	if err = d.sender.Send(ctx, msg); err != nil {
		d.logger.WarnContext(ctx, "Unable to send notification",
			"subject", subject, "order_id", view.ID.String(), "error", err.Error())
		d.logger.DebugContext(ctx, "Notification failure", "subject", subject, "recipients", recipients, "error", err)
	}
}

// recipients resolves the owner address and, on creation, the approver
// addresses when configured. Duplicates and blanks are dropped.
func (d *Dispatcher) recipients(ctx context.Context, repos Repositories, event Event, view readmodel.OrderView) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(email string) {
		email = strings.TrimSpace(email)
		if email == "" {
			return
		}
		if _, ok := seen[strings.ToLower(email)]; ok {
			return
		}
		seen[strings.ToLower(email)] = struct{}{}
		out = append(out, email)
	}

	add(view.Owner.Email)

	if event == EventCreated && d.props.CopyApproversOnCreation {
		approvers, err := repos.UserRepository().ListByRole(ctx, identity.RoleApprover)
		if err != nil {
			d.logger.WarnContext(ctx, "Unable to resolve approver recipients",
				"order_id", view.ID.String(), "error", err.Error())
		}
		for _, approver := range approvers {
			add(approver.Email())
		}
	}

	return out
}
