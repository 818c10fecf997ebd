package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/application/notifications"
	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

const auditEntityOrder = "Order"

// transitionFunc applies one transition to a locked aggregate and writes the
// ledger rows it touches.
type transitionFunc func(ctx context.Context, uow OrderUoW, o *order.Order, actor *identity.User, now time.Time) error

// transition is shared by every handler that moves an existing order.
type transition struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	clock      func() time.Time
}

// run loads and locks the order, resolves the actor, applies apply, records
// the audit entry and hydrates the result inside one unit of work. The
// notification is emitted after commit and cannot fail the operation.
func (t transition) run(
	ctx context.Context,
	orderID kernel.UUID,
	actorUsername string,
	action audit.Action,
	event notifications.Event,
	apply transitionFunc,
) (readmodel.OrderView, error) {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return readmodel.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return readmodel.OrderView{}, err
	}

	actor, err := resolveUser(ctx, uow.UserRepository(), actorUsername)
	if err != nil {
		return readmodel.OrderView{}, err
	}

	now := t.clock()
	before := snapshot(o)

	if err = apply(ctx, uow, o, actor, now); err != nil {
		return readmodel.OrderView{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return readmodel.OrderView{}, err
	}

	if err = recordAudit(ctx, uow.AuditLogRepository(), o.ID(), action, before, snapshot(o), actor.ID(), now); err != nil {
		return readmodel.OrderView{}, err
	}

	view, err := readmodel.NewHydrator(uow.ProductRepository(), uow.UserRepository()).Hydrate(ctx, o)
	if err != nil {
		return readmodel.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return readmodel.OrderView{}, err
	}

	t.notifier.Notify(ctx, event, view)
	return view, nil
}

// resolveUser maps a missing principal to *errs.UnknownUserError.
func resolveUser(ctx context.Context, users ports.UserRepository, username string) (*identity.User, error) {
	user, err := users.GetByUsername(ctx, username)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewUnknownUserError(username)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func recordAudit(
	ctx context.Context,
	repo ports.AuditLogRepository,
	orderID kernel.UUID,
	action audit.Action,
	before audit.Snapshot,
	after audit.Snapshot,
	actorID kernel.UUID,
	now time.Time,
) error {
	entry, err := audit.NewEntry(kernel.NewUUID(), auditEntityOrder, orderID, action, before, after, actorID, now)
	if err != nil {
		return err
	}
	return repo.Add(ctx, entry)
}

// snapshot captures the mutable part of an order for the audit trail.
func snapshot(o *order.Order) audit.Snapshot {
	s := audit.Snapshot{"status": o.Status().String()}
	if o.DeliveryAddress() != "" {
		s["deliveryAddress"] = o.DeliveryAddress()
	}
	if a := o.Approval(); a != nil {
		s["approvalStatus"] = a.Status().String()
		s["approverId"] = a.ApproverID().String()
		if a.Comments() != "" {
			s["approvalComments"] = a.Comments()
		}
	}
	if c := o.CourierInfo(); c != nil {
		s["courierName"] = c.CourierName()
		s["trackingNumber"] = c.TrackingNumber()
		s["dispatchedAt"] = c.DispatchedAt().UTC().Format(time.RFC3339)
	}
	return s
}
