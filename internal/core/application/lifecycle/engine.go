// Package lifecycle exposes the order lifecycle engine as a single entry point
// for inbound adapters. Every method returns a fully hydrated view or a typed
// error from internal/pkg/errs.
package lifecycle

import (
	"context"
	"time"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// Engine is the contract of the order lifecycle.
type Engine interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (readmodel.OrderView, error)
	Approve(ctx context.Context, orderID kernel.UUID, approverUsername string, comments string) (readmodel.OrderView, error)
	Reject(ctx context.Context, orderID kernel.UUID, approverUsername string, comments string) (readmodel.OrderView, error)
	Accept(ctx context.Context, orderID kernel.UUID, agentUsername string, deliveryAddress string) (readmodel.OrderView, error)
	RecordDispatch(ctx context.Context, req RecordDispatchRequest) (readmodel.OrderView, error)
	MarkFulfilled(ctx context.Context, orderID kernel.UUID, actorUsername string) (readmodel.OrderView, error)

	GetOrder(ctx context.Context, orderID kernel.UUID) (readmodel.OrderView, error)
	ListOrdersForUser(ctx context.Context, username string) ([]readmodel.OrderView, error)
	ListAllOrders(ctx context.Context) ([]readmodel.OrderView, error)
	ListOrdersByStatus(ctx context.Context, viewerRole identity.Role, statuses ...order.Status) ([]readmodel.OrderView, error)
	LatestNotifications(ctx context.Context, limit int) ([]readmodel.NotificationView, error)
}

// CreateOrderRequest places an order on behalf of OwnerUsername. OrderID is
// generated when zero.
type CreateOrderRequest struct {
	OrderID         kernel.UUID
	OwnerUsername   string
	ShippingAddress string
	CustomerTaxID   string
	Items           []commands.ItemInput
}

// RecordDispatchRequest carries courier details. DispatchedAt is stored as given.
type RecordDispatchRequest struct {
	OrderID        kernel.UUID
	ActorUsername  string
	CourierName    string
	TrackingNumber string
	DispatchedAt   time.Time
}

// Handlers groups the command and query handlers the Service delegates to.
type Handlers struct {
	CreateOrder         commands.CreateOrderCommandHandler
	Approve             commands.ApproveOrderCommandHandler
	Reject              commands.RejectOrderCommandHandler
	Accept              commands.AcceptOrderCommandHandler
	RecordDispatch      commands.RecordDispatchCommandHandler
	MarkFulfilled       commands.MarkFulfilledCommandHandler
	GetOrder            queries.GetOrderQueryHandler
	ListOrdersForUser   queries.ListOrdersForUserQueryHandler
	ListAllOrders       queries.ListAllOrdersQueryHandler
	ListOrdersByStatus  queries.ListOrdersByStatusQueryHandler
	LatestNotifications queries.LatestNotificationsQueryHandler
}

// NewHandlers builds every handler over the given factories.
func NewHandlers(
	orderUoWs commands.OrderUoWFactory,
	repos queries.RepositoriesFactory,
	notifier commands.Notifier,
	clock func() time.Time,
) Handlers {
	return Handlers{
		CreateOrder:         commands.NewCreateOrderCommandHandler(orderUoWs, notifier, clock),
		Approve:             commands.NewApproveOrderCommandHandler(orderUoWs, notifier, clock),
		Reject:              commands.NewRejectOrderCommandHandler(orderUoWs, notifier, clock),
		Accept:              commands.NewAcceptOrderCommandHandler(orderUoWs, notifier, clock),
		RecordDispatch:      commands.NewRecordDispatchCommandHandler(orderUoWs, notifier, clock),
		MarkFulfilled:       commands.NewMarkFulfilledCommandHandler(orderUoWs, notifier, clock),
		GetOrder:            queries.NewGetOrderQueryHandler(repos),
		ListOrdersForUser:   queries.NewListOrdersForUserQueryHandler(repos),
		ListAllOrders:       queries.NewListAllOrdersQueryHandler(repos),
		ListOrdersByStatus:  queries.NewListOrdersByStatusQueryHandler(repos),
		LatestNotifications: queries.NewLatestNotificationsQueryHandler(repos),
	}
}
