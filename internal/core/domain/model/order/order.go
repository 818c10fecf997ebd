package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering domain. It owns its items, the
// approval decision and the courier details, and is the single consistency
// boundary for every lifecycle transition.
//
// Order follows these invariants:
//   - Must have a valid identifier, owner and creation timestamp
//   - Must have a non-empty shipping address
//   - Must contain at least one item, one item per product; items never change after creation
//   - Status changes only through the transition methods below
//   - Approval and CourierInfo, once present, are never removed
type Order struct {
	id              kernel.UUID
	ownerID         kernel.UUID
	status          Status
	shippingAddress string
	deliveryAddress string
	customerTaxID   string
	createdAt       time.Time
	items           []Item
	approval        *Approval
	courierInfo     *CourierInfo
	isConstructed   bool
}

// NewOrder creates an order in PENDING_APPROVAL status.
//
// Parameters:
//   - id: Unique identifier for the order
//   - ownerID: The user placing the order
//   - shippingAddress: Required, surrounding whitespace is trimmed
//   - customerTaxID: Optional tax registration of the customer
//   - items: At least one line, each product at most once
//   - createdAt: Creation timestamp, immutable afterwards
//
// Returns errs.ErrEmptyOrder (wrapped) when items is empty.
//
// Example:
//
//	item, _ := order.NewItem(productID, 2, kernel.MustMoney("2499.00"))
//	o, err := order.NewOrder(kernel.NewUUID(), ownerID, "12 MG Road, Pune", "", []order.Item{item}, time.Now())
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	shippingAddress string,
	customerTaxID string,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        PendingApproval,
		customerTaxID: strings.TrimSpace(customerTaxID),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setShippingAddress(shippingAddress),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an aggregate from persisted state. Besides the field
// checks of NewOrder it verifies that the approval and courier details agree
// with the status.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	status Status,
	shippingAddress string,
	deliveryAddress string,
	customerTaxID string,
	createdAt time.Time,
	items []Item,
	approval *Approval,
	courierInfo *CourierInfo,
) (*Order, error) {
	o := &Order{
		status:          status,
		deliveryAddress: deliveryAddress,
		customerTaxID:   customerTaxID,
		approval:        approval,
		courierInfo:     courierInfo,
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		status.Validate(),
		o.setShippingAddress(shippingAddress),
		o.setItems(items),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if err := o.validateConsistency(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// DeliveryAddress is empty until the order is accepted.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) CustomerTaxID() string {
	return o.customerTaxID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Approval returns nil until the order was approved or rejected.
func (o *Order) Approval() *Approval {
	return o.approval
}

// CourierInfo returns nil until a dispatch was recorded.
func (o *Order) CourierInfo() *CourierInfo {
	return o.courierInfo
}

// Total sums quantity × captured unit price over all items. Live catalog
// prices play no part in it.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Approve records an approved decision by approverID and moves the order to APPROVED.
// Allowed only from PENDING_APPROVAL; comments are optional.
func (o *Order) Approve(approverID kernel.UUID, comments string, decidedAt time.Time) error {
	return o.decide(ApprovalApproved, approverID, comments, decidedAt)
}

// Reject records a rejected decision by approverID and moves the order to REJECTED.
// Allowed only from PENDING_APPROVAL.
func (o *Order) Reject(approverID kernel.UUID, comments string, decidedAt time.Time) error {
	return o.decide(ApprovalRejected, approverID, comments, decidedAt)
}

// Accept sets the delivery address and moves an APPROVED order to ACCEPTED.
func (o *Order) Accept(deliveryAddress string) error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	address := strings.TrimSpace(deliveryAddress)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}

	o.deliveryAddress = address
	o.status = newStatus
	return nil
}

// RecordDispatch stores the courier details and moves the order to IN_TRANSIT.
// Calling it again while IN_TRANSIT overwrites the details in place.
//
// Example:
//
//	info, _ := order.NewCourierInfo("Delhivery", "DL123", dispatchedAt)
//	if err := o.RecordDispatch(info); err != nil {
//	    // *errs.InvalidStateTransitionError for PENDING_APPROVAL, REJECTED, FULFILLED
//	}
func (o *Order) RecordDispatch(info CourierInfo) error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	if info.courierName == "" || info.trackingNumber == "" || info.dispatchedAt.IsZero() {
		return errs.NewValueIsRequiredError("courier info")
	}

	if o.courierInfo == nil {
		o.courierInfo = &CourierInfo{}
	}
	*o.courierInfo = info
	o.status = newStatus
	return nil
}

// MarkFulfilled moves an IN_TRANSIT order to FULFILLED.
func (o *Order) MarkFulfilled() error {
	newStatus, err := o.status.Fulfill()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) decide(decision ApprovalStatus, approverID kernel.UUID, comments string, decidedAt time.Time) error {
	var (
		newStatus Status
		err       error
	)
	if decision == ApprovalApproved {
		newStatus, err = o.status.Approve()
	} else {
		newStatus, err = o.status.Reject()
	}
	if err != nil {
		return err
	}

	if err = approverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("approver id", err)
	}
	if decidedAt.IsZero() {
		return errs.NewValueIsRequiredError("decision timestamp")
	}

	o.approval = &Approval{
		status:     decision,
		comments:   strings.TrimSpace(comments),
		decidedAt:  decidedAt,
		approverID: approverID,
	}
	o.status = newStatus
	return nil
}

func (o *Order) validateConsistency() error {
	expected := ApprovalApproved
	switch o.status {
	case PendingApproval:
		expected = ApprovalPending
	case Rejected:
		expected = ApprovalRejected
	}

	switch {
	case o.approval == nil && expected != ApprovalPending:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s requires an approval decision", o.status),
		)
	case o.approval != nil && o.approval.status != expected:
		return errs.NewValueIsInvalidErrorWithCause(
			"approval is invalid",
			fmt.Errorf("%s order cannot carry a %s decision", o.status, o.approval.status),
		)
	}

	dispatched := o.status == InTransit || o.status == Fulfilled
	if dispatched != (o.courierInfo != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have courier info set to %t", o.status, o.courierInfo != nil),
		)
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner id", err)
	}
	o.ownerID = id
	return nil
}

func (o *Order) setShippingAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = at
	return nil
}

// setItems rejects an empty list and duplicate products, since a line is
// identified by (order, product).
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.ErrEmptyOrder
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.productID]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items are invalid",
				fmt.Errorf("product %s is listed more than once", item.productID),
			)
		}
		seen[item.productID] = struct{}{}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
