package readmodel

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// ProductReader resolves catalog references.
type ProductReader interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}

// UserReader resolves user references.
type UserReader interface {
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)
}

// Hydrator resolves every reference of a loaded order. An order whose product,
// owner or approver no longer resolves is reported as
// *errs.ReferencedEntityMissingError, never returned half-filled.
//
// A Hydrator caches lookups, so one instance should serve a single request.
type Hydrator struct {
	products ProductReader
	users    UserReader

	productCache map[kernel.UUID]*catalog.Product
	userCache    map[kernel.UUID]*identity.User
}

func NewHydrator(products ProductReader, users UserReader) *Hydrator {
	return &Hydrator{
		products:     products,
		users:        users,
		productCache: make(map[kernel.UUID]*catalog.Product),
		userCache:    make(map[kernel.UUID]*identity.User),
	}
}

// Hydrate builds the view of one order. The total is computed from the unit
// price snapshots of the items.
func (h *Hydrator) Hydrate(ctx context.Context, o *order.Order) (OrderView, error) {
	if err := o.Validate(); err != nil {
		return OrderView{}, err
	}

	owner, err := h.user(ctx, o.OwnerID())
	if err != nil {
		return OrderView{}, err
	}

	items := make([]ItemView, 0, len(o.Items()))
	for _, item := range o.Items() {
		product, productErr := h.product(ctx, item.ProductID())
		if productErr != nil {
			return OrderView{}, productErr
		}

		items = append(items, ItemView{
			ProductID:   item.ProductID(),
			SKU:         product.SKU(),
			ProductName: product.Name(),
			ImageURL:    product.ImageURL(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
		})
	}

	view := OrderView{
		ID:              o.ID(),
		Status:          o.Status(),
		Owner:           toUserRef(owner),
		ShippingAddress: o.ShippingAddress(),
		DeliveryAddress: o.DeliveryAddress(),
		CustomerTaxID:   o.CustomerTaxID(),
		CreatedAt:       o.CreatedAt(),
		Items:           items,
		Total:           o.Total(),
	}

	if approval := o.Approval(); approval != nil {
		approver, approverErr := h.user(ctx, approval.ApproverID())
		if approverErr != nil {
			return OrderView{}, approverErr
		}

		view.Approval = &ApprovalView{
			Status:    approval.Status(),
			Comments:  approval.Comments(),
			DecidedAt: approval.DecidedAt(),
			Approver:  toUserRef(approver),
		}
	}

	if info := o.CourierInfo(); info != nil {
		view.CourierInfo = &CourierInfoView{
			CourierName:    info.CourierName(),
			TrackingNumber: info.TrackingNumber(),
			DispatchedAt:   info.DispatchedAt(),
		}
	}

	return view, nil
}

// HydrateAll hydrates orders in order. The first failure aborts the whole list.
func (h *Hydrator) HydrateAll(ctx context.Context, orders []*order.Order) ([]OrderView, error) {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view, err := h.Hydrate(ctx, o)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (h *Hydrator) product(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if p, ok := h.productCache[id]; ok {
		return p, nil
	}

	p, err := h.products.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewReferencedEntityMissingError("product", id.String())
	}
	if err != nil {
		return nil, err
	}

	h.productCache[id] = p
	return p, nil
}

func (h *Hydrator) user(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if u, ok := h.userCache[id]; ok {
		return u, nil
	}

	u, err := h.users.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewReferencedEntityMissingError("user", id.String())
	}
	if err != nil {
		return nil, err
	}

	h.userCache[id] = u
	return u, nil
}

func toUserRef(u *identity.User) UserRef {
	return UserRef{
		ID:          u.ID(),
		Username:    u.Username(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        u.Role(),
	}
}
