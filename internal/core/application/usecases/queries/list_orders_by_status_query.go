package queries

import (
	"context"
	"errors"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery lists orders in the requested statuses as seen by a
// viewer role. Fulfillment agents only ever see APPROVED, ACCEPTED, IN_TRANSIT
// and FULFILLED orders: requested statuses outside that set are dropped, and
// an empty request means the whole visible set.
//
// Example:
//
//	q, _ := NewListOrdersByStatusQuery(identity.RoleApprover, order.PendingApproval) // the pending queue
//	q, _ = NewListOrdersByStatusQuery(identity.RoleFulfillmentAgent)                // all visible orders
type ListOrdersByStatusQuery struct {
	viewerRole identity.Role
	statuses   []order.Status
	guard      guard.ConstructorGuard
}

func NewListOrdersByStatusQuery(viewerRole identity.Role, statuses ...order.Status) (ListOrdersByStatusQuery, error) {
	if err := viewerRole.Validate(); err != nil {
		return ListOrdersByStatusQuery{}, err
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListOrdersByStatusQuery{}, err
		}
	}

	return ListOrdersByStatusQuery{
		viewerRole: viewerRole,
		statuses:   append([]order.Status(nil), statuses...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

func (q ListOrdersByStatusQuery) ViewerRole() identity.Role {
	return q.viewerRole
}

// EffectiveStatuses applies the role-scoped visibility to the requested statuses.
func (q ListOrdersByStatusQuery) EffectiveStatuses() []order.Status {
	requested := q.statuses
	if len(requested) == 0 {
		requested = order.AllStatuses()
	}

	if q.viewerRole != identity.RoleFulfillmentAgent {
		return requested
	}

	visible := make([]order.Status, 0, len(requested))
	for _, s := range requested {
		if s.IsFulfillmentVisible() {
			visible = append(visible, s)
		}
	}
	return visible
}

type ListOrdersByStatusQueryHandler struct {
	repos RepositoriesFactory
}

func NewListOrdersByStatusQueryHandler(repos RepositoriesFactory) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{repos: repos}
}

func (h ListOrdersByStatusQueryHandler) Handle(ctx context.Context, query ListOrdersByStatusQuery) ([]readmodel.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := query.EffectiveStatuses()
	if len(statuses) == 0 {
		return []readmodel.OrderView{}, nil
	}

	repos := h.repos.Create()
	orders, err := repos.OrderRepository().ListByStatuses(ctx, statuses...)
	if err != nil {
		return nil, err
	}

	return readmodel.NewHydrator(repos.ProductRepository(), repos.UserRepository()).HydrateAll(ctx, orders)
}
