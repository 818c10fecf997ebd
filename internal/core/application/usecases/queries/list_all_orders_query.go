package queries

import (
	"context"
	"errors"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery lists every order. Callers are expected to be privileged.
type ListAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListAllOrdersQuery() ListAllOrdersQuery {
	return ListAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

type ListAllOrdersQueryHandler struct {
	repos RepositoriesFactory
}

func NewListAllOrdersQueryHandler(repos RepositoriesFactory) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{repos: repos}
}

func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]readmodel.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repos := h.repos.Create()
	orders, err := repos.OrderRepository().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return readmodel.NewHydrator(repos.ProductRepository(), repos.UserRepository()).HydrateAll(ctx, orders)
}
