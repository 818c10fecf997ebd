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

// ApproveOrderCommandHandler moves PENDING_APPROVAL orders to APPROVED and
// writes the approval ledger.
type ApproveOrderCommandHandler struct {
	transition
}

func NewApproveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock func() time.Time,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{transition{uowFactory: uowFactory, notifier: notifier, clock: clock}}
}

func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (readmodel.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	return h.run(ctx, cmd.OrderID(), cmd.ApproverUsername(), audit.ActionApprove, notifications.EventApproved,
		func(ctx context.Context, uow OrderUoW, o *order.Order, actor *identity.User, now time.Time) error {
			if err := o.Approve(actor.ID(), cmd.Comments(), now); err != nil {
				return err
			}
			return uow.ApprovalRepository().Save(ctx, o.ID(), o.Approval())
		})
}

// RejectOrderCommandHandler moves PENDING_APPROVAL orders to REJECTED and
// writes the approval ledger.
type RejectOrderCommandHandler struct {
	transition
}

func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock func() time.Time,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{transition{uowFactory: uowFactory, notifier: notifier, clock: clock}}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (readmodel.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	return h.run(ctx, cmd.OrderID(), cmd.ApproverUsername(), audit.ActionReject, notifications.EventRejected,
		func(ctx context.Context, uow OrderUoW, o *order.Order, actor *identity.User, now time.Time) error {
			if err := o.Reject(actor.ID(), cmd.Comments(), now); err != nil {
				return err
			}
			return uow.ApprovalRepository().Save(ctx, o.ID(), o.Approval())
		})
}
