package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository persists the Order aggregate: the order row and its items.
// Reads return the aggregate together with its approval and courier details;
// those two are written through ApprovalRepository and CourierInfoRepository.
type OrderRepository interface {
	// Add inserts a new order with all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable order columns (status, delivery address).
	// Items are immutable and are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends. Concurrent transitions on one order serialize here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByOwner returns the orders placed by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]*order.Order, error)

	// ListAll returns every order, newest first.
	ListAll(ctx context.Context) ([]*order.Order, error)

	// ListByStatuses returns the orders in any of the given statuses, newest first.
	// An empty status list yields an empty result.
	ListByStatuses(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}

// ApprovalRepository is the approval ledger: at most one decision per order.
type ApprovalRepository interface {
	// Save inserts or replaces the approval of orderID.
	Save(ctx context.Context, orderID kernel.UUID, approval *order.Approval) error
}

// CourierInfoRepository is the dispatch ledger: at most one courier record per order.
type CourierInfoRepository interface {
	// Save inserts or updates in place the courier details of orderID.
	Save(ctx context.Context, orderID kernel.UUID, info order.CourierInfo) error
}
