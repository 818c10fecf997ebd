package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/application/notifications"
	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler places new orders. Unit prices are copied from the
// catalog at this moment and never re-read afterwards.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	clock      func() time.Time
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock func() time.Time,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

// Handle creates the order in PENDING_APPROVAL and returns its hydrated view.
// Fails with *errs.UnknownUserError when the owner does not resolve and with
// *errs.ReferencedEntityMissingError when a product does not.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (readmodel.OrderView, error) {
	if err := cmd.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return readmodel.OrderView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := resolveUser(ctx, uow.UserRepository(), cmd.OwnerUsername())
	if err != nil {
		return readmodel.OrderView{}, err
	}

	productRepo := uow.ProductRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		product, productErr := productRepo.Get(ctx, input.ProductID)
		if errors.Is(productErr, errs.ErrObjectNotFound) {
			return readmodel.OrderView{}, errs.NewReferencedEntityMissingError("product", input.ProductID.String())
		}
		if productErr != nil {
			return readmodel.OrderView{}, productErr
		}

		item, itemErr := order.NewItem(product.ID(), input.Quantity, product.Price())
		if itemErr != nil {
			return readmodel.OrderView{}, itemErr
		}
		items = append(items, item)
	}

	now := h.clock()
	o, err := order.NewOrder(cmd.OrderID(), owner.ID(), cmd.ShippingAddress(), cmd.CustomerTaxID(), items, now)
	if err != nil {
		return readmodel.OrderView{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return readmodel.OrderView{}, err
	}

	if err = recordAudit(ctx, uow.AuditLogRepository(), o.ID(), audit.ActionCreate, nil, snapshot(o), owner.ID(), now); err != nil {
		return readmodel.OrderView{}, err
	}

	view, err := readmodel.NewHydrator(productRepo, uow.UserRepository()).Hydrate(ctx, o)
	if err != nil {
		return readmodel.OrderView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return readmodel.OrderView{}, err
	}

	h.notifier.Notify(ctx, notifications.EventCreated, view)
	return view, nil
}
