package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Wire types of openapi.yaml.
type (
	NewOrderItem struct {
		ProductId uuid.UUID `json:"productId"`
		Quantity  int       `json:"quantity"`
	}

	NewOrder struct {
		ShippingAddress string         `json:"shippingAddress"`
		CustomerGst     string         `json:"customerGst,omitempty"`
		Items           []NewOrderItem `json:"items"`
	}

	Decision struct {
		Comments string `json:"comments,omitempty"`
	}

	Acceptance struct {
		DeliveryAddress string `json:"deliveryAddress"`
	}

	Dispatch struct {
		CourierName    string    `json:"courierName"`
		TrackingNumber string    `json:"trackingNumber"`
		DispatchDate   time.Time `json:"dispatchDate"`
	}

	User struct {
		Id          uuid.UUID `json:"id"`
		Username    string    `json:"username"`
		DisplayName string    `json:"displayName,omitempty"`
		Email       string    `json:"email,omitempty"`
	}

	OrderItem struct {
		ProductId   uuid.UUID `json:"productId"`
		Sku         string    `json:"sku"`
		ProductName string    `json:"productName"`
		ImageUrl    string    `json:"imageUrl,omitempty"`
		Quantity    int       `json:"quantity"`
		UnitPrice   string    `json:"unitPrice"`
		LineTotal   string    `json:"lineTotal"`
	}

	Approval struct {
		Status    string    `json:"status"`
		Comments  string    `json:"comments,omitempty"`
		DecidedAt time.Time `json:"decidedAt"`
		Approver  User      `json:"approver"`
	}

	CourierInfo struct {
		CourierName    string    `json:"courierName"`
		TrackingNumber string    `json:"trackingNumber"`
		DispatchDate   time.Time `json:"dispatchDate"`
	}

	Order struct {
		Id              uuid.UUID    `json:"id"`
		Status          string       `json:"status"`
		PlacedBy        User         `json:"placedBy"`
		ShippingAddress string       `json:"shippingAddress"`
		DeliveryAddress string       `json:"deliveryAddress,omitempty"`
		CustomerGst     string       `json:"customerGst,omitempty"`
		Items           []OrderItem  `json:"items"`
		Total           string       `json:"total"`
		CreatedAt       time.Time    `json:"createdAt"`
		Approval        *Approval    `json:"approval,omitempty"`
		CourierInfo     *CourierInfo `json:"courierInfo,omitempty"`
	}

	Notification struct {
		Id         uuid.UUID `json:"id"`
		Subject    string    `json:"subject"`
		Recipients []string  `json:"recipients"`
		Body       string    `json:"body"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
)

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *string
}

// ListNotificationsParams defines parameters for ListNotifications.
type ListNotificationsParams struct {
	Limit *int
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/pending)
	ListPendingOrders(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId uuid.UUID) error
	// (POST /api/v1/orders/{orderId}/approve)
	ApproveOrder(ctx echo.Context, orderId uuid.UUID) error
	// (POST /api/v1/orders/{orderId}/reject)
	RejectOrder(ctx echo.Context, orderId uuid.UUID) error
	// (POST /api/v1/orders/{orderId}/accept)
	AcceptOrder(ctx echo.Context, orderId uuid.UUID) error
	// (POST /api/v1/orders/{orderId}/courier)
	RecordDispatch(ctx echo.Context, orderId uuid.UUID) error
	// (POST /api/v1/orders/{orderId}/fulfill)
	MarkFulfilled(ctx echo.Context, orderId uuid.UUID) error
	// (GET /api/v1/notifications)
	ListNotifications(ctx echo.Context, params ListNotificationsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter status: "+err.Error())
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListPendingOrders(ctx echo.Context) error {
	return w.Handler.ListPendingOrders(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ApproveOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ApproveOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) RejectOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RejectOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AcceptOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) RecordDispatch(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RecordDispatch(ctx, orderId)
}

func (w *ServerInterfaceWrapper) MarkFulfilled(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.MarkFulfilled(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ListNotifications(ctx echo.Context) error {
	var params ListNotificationsParams

	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter limit: "+err.Error())
	}

	return w.Handler.ListNotifications(ctx, params)
}

func bindOrderID(ctx echo.Context) (uuid.UUID, error) {
	var orderId uuid.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter orderId: "+err.Error())
	}
	return orderId, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group that handlers register on.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL adds each server route to the EchoRouter with a base URL prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/pending", wrapper.ListPendingOrders)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:orderId/approve", wrapper.ApproveOrder)
	router.POST(baseURL+"/orders/:orderId/reject", wrapper.RejectOrder)
	router.POST(baseURL+"/orders/:orderId/accept", wrapper.AcceptOrder)
	router.POST(baseURL+"/orders/:orderId/courier", wrapper.RecordDispatch)
	router.POST(baseURL+"/orders/:orderId/fulfill", wrapper.MarkFulfilled)
	router.GET(baseURL+"/notifications", wrapper.ListNotifications)
}
