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

// RecordDispatchCommandHandler stores courier details and moves APPROVED,
// ACCEPTED or IN_TRANSIT orders to IN_TRANSIT. Re-dispatching an IN_TRANSIT
// order overwrites the courier record in place.
type RecordDispatchCommandHandler struct {
	transition
}

func NewRecordDispatchCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock func() time.Time,
) RecordDispatchCommandHandler {
	return RecordDispatchCommandHandler{transition{uowFactory: uowFactory, notifier: notifier, clock: clock}}
}

func (h RecordDispatchCommandHandler) Handle(ctx context.Context, cmd RecordDispatchCommand) (readmodel.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	return h.run(ctx, cmd.OrderID(), cmd.ActorUsername(), audit.ActionDispatch, notifications.EventDispatched,
		func(ctx context.Context, uow OrderUoW, o *order.Order, _ *identity.User, _ time.Time) error {
			if err := o.RecordDispatch(cmd.CourierInfo()); err != nil {
				return err
			}
			return uow.CourierInfoRepository().Save(ctx, o.ID(), *o.CourierInfo())
		})
}
