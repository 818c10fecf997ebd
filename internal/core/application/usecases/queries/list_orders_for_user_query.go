package queries

import (
	"context"
	"errors"
	"strings"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrListOrdersForUserQueryIsNotConstructed = errors.New(
	"ListOrdersForUserQuery must be created via NewListOrdersForUserQuery constructor",
)

// ListOrdersForUserQuery lists the orders placed by one user.
type ListOrdersForUserQuery struct {
	username string
	guard    guard.ConstructorGuard
}

func NewListOrdersForUserQuery(username string) (ListOrdersForUserQuery, error) {
	if strings.TrimSpace(username) == "" {
		return ListOrdersForUserQuery{}, errs.NewValueIsRequiredError("username")
	}
	return ListOrdersForUserQuery{username: strings.TrimSpace(username), guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersForUserQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersForUserQueryIsNotConstructed)
}

func (q ListOrdersForUserQuery) Username() string {
	return q.username
}

// ListOrdersForUserQueryHandler returns *errs.UnknownUserError when the user does not resolve.
type ListOrdersForUserQueryHandler struct {
	repos RepositoriesFactory
}

func NewListOrdersForUserQueryHandler(repos RepositoriesFactory) ListOrdersForUserQueryHandler {
	return ListOrdersForUserQueryHandler{repos: repos}
}

func (h ListOrdersForUserQueryHandler) Handle(ctx context.Context, query ListOrdersForUserQuery) ([]readmodel.OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repos := h.repos.Create()
	user, err := repos.UserRepository().GetByUsername(ctx, query.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewUnknownUserError(query.Username())
	}
	if err != nil {
		return nil, err
	}

	orders, err := repos.OrderRepository().ListByOwner(ctx, user.ID())
	if err != nil {
		return nil, err
	}

	return readmodel.NewHydrator(repos.ProductRepository(), repos.UserRepository()).HydrateAll(ctx, orders)
}
