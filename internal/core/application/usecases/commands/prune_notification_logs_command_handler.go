package commands

import (
	"context"
	"time"
)

// PruneNotificationLogsCommandHandler deletes expired notification log entries.
type PruneNotificationLogsCommandHandler struct {
	uowFactory NotificationLogUoWFactory
	clock      func() time.Time
}

func NewPruneNotificationLogsCommandHandler(
	uowFactory NotificationLogUoWFactory,
	clock func() time.Time,
) PruneNotificationLogsCommandHandler {
	return PruneNotificationLogsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the number of removed entries.
func (h PruneNotificationLogsCommandHandler) Handle(ctx context.Context, cmd PruneNotificationLogsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.NotificationLogRepository().DeleteOlderThan(ctx, h.clock().Add(-cmd.Retention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
