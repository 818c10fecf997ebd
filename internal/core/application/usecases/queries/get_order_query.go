package queries

import (
	"context"
	"errors"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches a single order by id.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryHandler returns the hydrated order or *errs.ObjectNotFoundError.
type GetOrderQueryHandler struct {
	repos RepositoriesFactory
}

func NewGetOrderQueryHandler(repos RepositoriesFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{repos: repos}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (readmodel.OrderView, error) {
	if err := query.Validate(); err != nil {
		return readmodel.OrderView{}, err
	}

	repos := h.repos.Create()
	o, err := repos.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return readmodel.OrderView{}, err
	}

	return readmodel.NewHydrator(repos.ProductRepository(), repos.UserRepository()).Hydrate(ctx, o)
}
