package lifecycle

import (
	"context"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

var _ Engine = (*Service)(nil)

// Service implements Engine by building commands and queries and passing
// them to their handlers.
type Service struct {
	handlers Handlers
}

func NewService(handlers Handlers) *Service {
	return &Service{handlers: handlers}
}

func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (readmodel.OrderView, error) {
	orderID := req.OrderID
	if orderID.Validate() != nil {
		orderID = kernel.NewUUID()
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, req.OwnerUsername, req.ShippingAddress, req.CustomerTaxID, req.Items)
	if err != nil {
		return readmodel.OrderView{}, err
	}
	return s.handlers.CreateOrder.Handle(ctx, cmd)
}

func (s *Service) Approve(
	ctx context.Context,
	orderID kernel.UUID,
	approverUsername string,
	comments string,
) (readmodel.OrderView, error) {
	cmd, err := commands.NewApproveOrderCommand(orderID, approverUsername, comments)
	if err != nil {
		return readmodel.OrderView{}, err
	}
	return s.handlers.Approve.Handle(ctx, cmd)
}

func (s *Service) Reject(
	ctx context.Context,
	orderID kernel.UUID,
	approverUsername string,
	comments string,
) (readmodel.OrderView, error) {
	cmd, err := commands.NewRejectOrderCommand(orderID, approverUsername, comments)
	if err != nil {
		return readmodel.OrderView{}, err
	}
	return s.handlers.Reject.Handle(ctx, cmd)
}

func (s *Service) Accept(
	ctx context.Context,
	orderID kernel.UUID,
	agentUsername string,
	deliveryAddress string,
) (readmodel.OrderView, error) {
	cmd, err := commands.NewAcceptOrderCommand(orderID, agentUsername, deliveryAddress)
	if err != nil {
		return readmodel.OrderView{}, err
	}
	return s.handlers.Accept.Handle(ctx, cmd)
}

func (s *Service) RecordDispatch(ctx context.Context, req RecordDispatchRequest) (readmodel.OrderView, error) {
	cmd, err := commands.NewRecordDispatchCommand(
		req.OrderID, req.ActorUsername, req.CourierName, req.TrackingNumber, req.DispatchedAt,
	)
	if err != nil {
		return readmodel.OrderView{}, err
	}
	return s.handlers.RecordDispatch.Handle(ctx, cmd)
}

func (s *Service) MarkFulfilled(ctx context.Context, orderID kernel.UUID, actorUsername string) (readmodel.OrderView, error) {
	cmd, err := commands.NewMarkFulfilledCommand(orderID, actorUsername)
	if err != nil {
		return readmodel.OrderView{}, err
	}
	return s.handlers.MarkFulfilled.Handle(ctx, cmd)
}

func (s *Service) GetOrder(ctx context.Context, orderID kernel.UUID) (readmodel.OrderView, error) {
	q, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return readmodel.OrderView{}, err
	}
	return s.handlers.GetOrder.Handle(ctx, q)
}

func (s *Service) ListOrdersForUser(ctx context.Context, username string) ([]readmodel.OrderView, error) {
	q, err := queries.NewListOrdersForUserQuery(username)
	if err != nil {
		return nil, err
	}
	return s.handlers.ListOrdersForUser.Handle(ctx, q)
}

func (s *Service) ListAllOrders(ctx context.Context) ([]readmodel.OrderView, error) {
	return s.handlers.ListAllOrders.Handle(ctx, queries.NewListAllOrdersQuery())
}

func (s *Service) ListOrdersByStatus(
	ctx context.Context,
	viewerRole identity.Role,
	statuses ...order.Status,
) ([]readmodel.OrderView, error) {
	q, err := queries.NewListOrdersByStatusQuery(viewerRole, statuses...)
	if err != nil {
		return nil, err
	}
	return s.handlers.ListOrdersByStatus.Handle(ctx, q)
}

func (s *Service) LatestNotifications(ctx context.Context, limit int) ([]readmodel.NotificationView, error) {
	q, err := queries.NewLatestNotificationsQuery(limit)
	if err != nil {
		return nil, err
	}
	return s.handlers.LatestNotifications.Handle(ctx, q)
}
