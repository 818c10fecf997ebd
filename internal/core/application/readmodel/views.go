// Package readmodel defines the fully resolved views returned by every engine
// operation and the Hydrator that builds them from loaded aggregates.
package readmodel

import (
	"time"

	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// UserRef is a resolved user reference.
type UserRef struct {
	ID          kernel.UUID
	Username    string
	Email       string
	DisplayName string
	Role        identity.Role
}

// ItemView is an order line with its product resolved.
type ItemView struct {
	ProductID   kernel.UUID
	SKU         string
	ProductName string
	ImageURL    string
	Quantity    int
	UnitPrice   kernel.Money
	LineTotal   kernel.Money
}

// ApprovalView is the resolved approval decision.
type ApprovalView struct {
	Status    order.ApprovalStatus
	Comments  string
	DecidedAt time.Time
	Approver  UserRef
}

// CourierInfoView holds the dispatch details.
type CourierInfoView struct {
	CourierName    string
	TrackingNumber string
	DispatchedAt   time.Time
}

// OrderView is a hydrated order. Approval and CourierInfo are nil when absent.
type OrderView struct {
	ID              kernel.UUID
	Status          order.Status
	Owner           UserRef
	ShippingAddress string
	DeliveryAddress string
	CustomerTaxID   string
	CreatedAt       time.Time
	Items           []ItemView
	Total           kernel.Money
	Approval        *ApprovalView
	CourierInfo     *CourierInfoView
}

// NotificationView is a captured notification.
type NotificationView struct {
	ID         kernel.UUID
	Subject    string
	Recipients []string
	Body       string
	CreatedAt  time.Time
}
