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

// MarkFulfilledCommandHandler moves IN_TRANSIT orders to FULFILLED.
type MarkFulfilledCommandHandler struct {
	transition
}

func NewMarkFulfilledCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock func() time.Time,
) MarkFulfilledCommandHandler {
	return MarkFulfilledCommandHandler{transition{uowFactory: uowFactory, notifier: notifier, clock: clock}}
}

func (h MarkFulfilledCommandHandler) Handle(ctx context.Context, cmd MarkFulfilledCommand) (readmodel.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	return h.run(ctx, cmd.OrderID(), cmd.ActorUsername(), audit.ActionFulfill, notifications.EventFulfilled,
		func(_ context.Context, _ OrderUoW, o *order.Order, _ *identity.User, _ time.Time) error {
			return o.MarkFulfilled()
		})
}
