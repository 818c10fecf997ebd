package commands

import (
	"context"
	"time"

	"ordering/internal/core/application/notifications"
	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler moves APPROVED orders to ACCEPTED.
type AcceptOrderCommandHandler struct {
	transition
}

func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock func() time.Time,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{transition{uowFactory: uowFactory, notifier: notifier, clock: clock}}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (readmodel.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	return h.run(ctx, cmd.OrderID(), cmd.AgentUsername(), audit.ActionAccept, notifications.EventAccepted,
		func(_ context.Context, _ OrderUoW, o *order.Order, _ *identity.User, _ time.Time) error {
			return o.Accept(cmd.DeliveryAddress())
		})
}
