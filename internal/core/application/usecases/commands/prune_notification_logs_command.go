package commands

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrPruneNotificationLogsCommandIsNotConstructed = errors.New(
	"PruneNotificationLogsCommand must be created via NewPruneNotificationLogsCommand constructor",
)

// PruneNotificationLogsCommand removes notification log entries older than the retention window.
type PruneNotificationLogsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPruneNotificationLogsCommand(retention time.Duration) (PruneNotificationLogsCommand, error) {
	if retention <= 0 {
		return PruneNotificationLogsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"retention is invalid",
			fmt.Errorf("%s is not positive", retention),
		)
	}

	return PruneNotificationLogsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PruneNotificationLogsCommand) Validate() error {
	return c.guard.Validate(ErrPruneNotificationLogsCommandIsNotConstructed)
}

func (c PruneNotificationLogsCommand) Retention() time.Duration {
	return c.retention
}
