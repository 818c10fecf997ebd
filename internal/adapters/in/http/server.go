package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/lifecycle"
	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var _ ServerInterface = (*Server)(nil)

// Server implements ServerInterface on top of the lifecycle engine. The
// acting user of every operation is the authenticated principal.
type Server struct {
	engine lifecycle.Engine
	logger *slog.Logger
}

func NewServer(engine lifecycle.Engine, logger *slog.Logger) *Server {
	return &Server{
		engine: engine,
		logger: logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /api/v1/orders. Approvers and admins see every order,
// fulfillment agents see the fulfillment-visible statuses and store users see
// their own orders.
func (s *Server) ListOrders(c echo.Context, params ListOrdersParams) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var statuses []order.Status
	if params.Status != nil {
		status, err := order.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(c, err, false)
		}
		statuses = append(statuses, status)
	}

	var views []readmodel.OrderView
	switch {
	case p.Role == identity.RoleFulfillmentAgent, len(statuses) > 0 && p.Role.IsPrivileged():
		views, err = s.engine.ListOrdersByStatus(ctx, p.Role, statuses...)
	case p.Role.IsPrivileged():
		views, err = s.engine.ListAllOrders(ctx)
	default:
		views, err = s.engine.ListOrdersForUser(ctx, p.Username)
		views = filterByStatus(views, statuses)
	}
	if err != nil {
		return s.fail(c, err, false)
	}

	return c.JSON(http.StatusOK, toOrders(views))
}

// ListPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) ListPendingOrders(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	views, err := s.engine.ListOrdersByStatus(c.Request().Context(), p.Role, order.PendingApproval)
	if err != nil {
		return s.fail(c, err, false)
	}
	return c.JSON(http.StatusOK, toOrders(views))
}

// CreateOrder handles POST /api/v1/orders on behalf of the principal.
func (s *Server) CreateOrder(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	items := make([]commands.ItemInput, 0, len(body.Items))
	for _, it := range body.Items {
		productID, err := kernel.UUIDFromGoogle(it.ProductId)
		if err != nil {
			return s.fail(c, err, true)
		}
		items = append(items, commands.ItemInput{ProductID: productID, Quantity: it.Quantity})
	}

	view, err := s.engine.CreateOrder(c.Request().Context(), lifecycle.CreateOrderRequest{
		OwnerUsername:   p.Username,
		ShippingAddress: body.ShippingAddress,
		CustomerTaxID:   body.CustomerGst,
		Items:           items,
	})
	if err != nil {
		return s.fail(c, err, true)
	}

	return c.JSON(http.StatusCreated, toOrder(view))
}

// GetOrder handles GET /api/v1/orders/{orderId}. Store users may only read
// their own orders; anything else is reported as not found.
func (s *Server) GetOrder(c echo.Context, orderId uuid.UUID) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(c, err, false)
	}

	view, err := s.engine.GetOrder(c.Request().Context(), id)
	if err != nil {
		return s.fail(c, err, false)
	}

	if p.Role == identity.RoleStoreUser && view.Owner.Username != p.Username {
		return s.fail(c, errs.NewObjectNotFoundError("order", id.String()), false)
	}

	return c.JSON(http.StatusOK, toOrder(view))
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
func (s *Server) ApproveOrder(c echo.Context, orderId uuid.UUID) error {
	return s.decide(c, orderId, s.engine.Approve)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(c echo.Context, orderId uuid.UUID) error {
	return s.decide(c, orderId, s.engine.Reject)
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(c echo.Context, orderId uuid.UUID) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(c, err, false)
	}

	var body Acceptance
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	view, err := s.engine.Accept(c.Request().Context(), id, p.Username, body.DeliveryAddress)
	if err != nil {
		return s.fail(c, err, false)
	}
	return c.JSON(http.StatusOK, toOrder(view))
}

// RecordDispatch handles POST /api/v1/orders/{orderId}/courier.
func (s *Server) RecordDispatch(c echo.Context, orderId uuid.UUID) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(c, err, false)
	}

	var body Dispatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	view, err := s.engine.RecordDispatch(c.Request().Context(), lifecycle.RecordDispatchRequest{
		OrderID:        id,
		ActorUsername:  p.Username,
		CourierName:    body.CourierName,
		TrackingNumber: body.TrackingNumber,
		DispatchedAt:   body.DispatchDate,
	})
	if err != nil {
		return s.fail(c, err, false)
	}
	return c.JSON(http.StatusCreated, toOrder(view))
}

// MarkFulfilled handles POST /api/v1/orders/{orderId}/fulfill.
func (s *Server) MarkFulfilled(c echo.Context, orderId uuid.UUID) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(c, err, false)
	}

	view, err := s.engine.MarkFulfilled(c.Request().Context(), id, p.Username)
	if err != nil {
		return s.fail(c, err, false)
	}
	return c.JSON(http.StatusOK, toOrder(view))
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(c echo.Context, params ListNotificationsParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	views, err := s.engine.LatestNotifications(c.Request().Context(), limit)
	if err != nil {
		return s.fail(c, err, false)
	}

	response := make([]Notification, 0, len(views))
	for _, v := range views {
		response = append(response, Notification{
			Id:         v.ID.Bytes(),
			Subject:    v.Subject,
			Recipients: v.Recipients,
			Body:       v.Body,
			CreatedAt:  v.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, response)
}

type decision func(ctx context.Context, orderID kernel.UUID, approverUsername string, comments string) (readmodel.OrderView, error)

func (s *Server) decide(c echo.Context, orderId uuid.UUID, apply decision) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return s.fail(c, err, false)
	}

	var body Decision
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
	}

	view, err := apply(c.Request().Context(), id, p.Username, body.Comments)
	if err != nil {
		return s.fail(c, err, false)
	}
	return c.JSON(http.StatusOK, toOrder(view))
}

func principal(c echo.Context) (Principal, error) {
	p, ok := PrincipalFrom(c)
	if !ok {
		return Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return p, nil
}

func filterByStatus(views []readmodel.OrderView, statuses []order.Status) []readmodel.OrderView {
	if len(statuses) == 0 {
		return views
	}

	filtered := make([]readmodel.OrderView, 0, len(views))
	for _, v := range views {
		for _, s := range statuses {
			if v.Status == s {
				filtered = append(filtered, v)
				break
			}
		}
	}
	return filtered
}
