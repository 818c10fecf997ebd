// Package notifications composes the plain-text order summaries sent after
// every committed transition and dispatches them on a best-effort basis.
package notifications

import (
	"fmt"
	"strings"

	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/domain/model/kernel"
)

// DispatchDateLayout renders courier dispatch timestamps, e.g. "05 Mar 2025 14:30 +05:30".
const DispatchDateLayout = "02 Jan 2006 15:04 -07:00"

// Event identifies the transition a notification reports.
type Event int

const (
	EventCreated Event = iota + 1
	EventApproved
	EventRejected
	EventAccepted
	EventDispatched
	EventFulfilled
)

func (e Event) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventApproved:
		return "approved"
	case EventRejected:
		return "rejected"
	case EventAccepted:
		return "accepted"
	case EventDispatched:
		return "dispatched"
	case EventFulfilled:
		return "fulfilled"
	default:
		return "unknown"
	}
}

// Subject returns the notification subject for event on orderID.
func Subject(event Event, orderID kernel.UUID) string {
	if event == EventCreated {
		return fmt.Sprintf("Order %s is pending approval", orderID)
	}
	return fmt.Sprintf("Order %s %s", orderID, event)
}

// Intro returns the opening sentence of the summary body.
func Intro(event Event) string {
	switch event {
	case EventCreated:
		return "A new order has been placed and awaits approval."
	case EventApproved:
		return "Good news! Your order has been approved."
	case EventRejected:
		return "Unfortunately the order was rejected."
	case EventAccepted:
		return "Your order has been accepted for fulfillment."
	case EventDispatched:
		return "Your order is on the move. Courier details are included below."
	case EventFulfilled:
		return "Your order has been delivered."
	default:
		return "Your order has been updated."
	}
}

// ComposeSummary renders the plain-text body of a notification.
//
// Example output:
//
//	Good news! Your order has been approved.
//
//	Order ID: 5f0c...
//	Status: APPROVED
//	Approver: priya
//	Placed By: alice
//	Shipping Address: 12 MG Road, Pune
//
//	Items:
//	- Hoodie x2 @ 2499.00 = 4998.00
//	- Cap x1 @ 1299.00 = 1299.00
//
//	Total: 6297.00
//	Approver Comments: ok
func ComposeSummary(intro string, view readmodel.OrderView) string {
	var b strings.Builder

	b.WriteString(intro)
	fmt.Fprintf(&b, "\n\nOrder ID: %s", view.ID)
	fmt.Fprintf(&b, "\nStatus: %s", view.Status)

	if view.Approval != nil && view.Approval.Approver.Username != "" {
		fmt.Fprintf(&b, "\nApprover: %s", view.Approval.Approver.Username)
	}

	fmt.Fprintf(&b, "\nPlaced By: %s", orDefault(view.Owner.Username, "Unknown"))
	fmt.Fprintf(&b, "\nShipping Address: %s", orDefault(view.ShippingAddress, "Not provided"))
	if view.DeliveryAddress != "" {
		fmt.Fprintf(&b, "\nDelivery Address: %s", view.DeliveryAddress)
	}

	if info := view.CourierInfo; info != nil {
		fmt.Fprintf(&b, "\nCourier: %s", info.CourierName)
		fmt.Fprintf(&b, "\nTracking #: %s", info.TrackingNumber)
		if !info.DispatchedAt.IsZero() {
			fmt.Fprintf(&b, "\nDispatch Date: %s", info.DispatchedAt.Format(DispatchDateLayout))
		}
	}

	b.WriteString("\n\nItems:\n")
	lines := make([]string, 0, len(view.Items))
	for _, item := range view.Items {
		lines = append(lines, fmt.Sprintf("- %s x%d @ %s = %s",
			item.ProductName, item.Quantity, item.UnitPrice, item.LineTotal))
	}
	b.WriteString(strings.Join(lines, "\n"))

	fmt.Fprintf(&b, "\n\nTotal: %s", view.Total)

	if view.Approval != nil && strings.TrimSpace(view.Approval.Comments) != "" {
		fmt.Fprintf(&b, "\nApprover Comments: %s", view.Approval.Comments)
	}

	return b.String()
}

func orDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
