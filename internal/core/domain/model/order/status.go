package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING_APPROVAL ──> APPROVED ──> ACCEPTED ──> IN_TRANSIT ──> FULFILLED
//	       │                 │                      ▲    ▲ │
//	       │                 └──────────────────────┘    └─┘
//	       └──> REJECTED        (record dispatch)     (re-dispatch)
//
// REJECTED and FULFILLED are terminal. Recording a dispatch while already
// IN_TRANSIT keeps the status and only refreshes the courier details.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingApproval is the initial status of every new order.
	PendingApproval

	// Approved orders were authorized by an approver and wait for fulfillment.
	Approved

	// Accepted orders were taken over by a fulfillment agent who set the delivery address.
	Accepted

	// InTransit orders have courier details recorded.
	InTransit

	// Fulfilled orders were delivered. Final state.
	Fulfilled

	// Rejected orders were declined by an approver. Final state.
	Rejected
)

// Operation names used in transition errors and audit entries.
const (
	OperationApprove        = "approve"
	OperationReject         = "reject"
	OperationAccept         = "accept"
	OperationRecordDispatch = "record dispatch"
	OperationMarkFulfilled  = "mark fulfilled"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		PendingApproval: "PENDING_APPROVAL",
		Approved:        "APPROVED",
		Accepted:        "ACCEPTED",
		InTransit:       "IN_TRANSIT",
		Fulfilled:       "FULFILLED",
		Rejected:        "REJECTED",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{PendingApproval, Approved, Accepted, InTransit, Fulfilled, Rejected}
}

// FulfillmentVisibleStatuses lists the statuses a fulfillment agent may list orders in.
func FulfillmentVisibleStatuses() []Status {
	return []Status{Approved, Accepted, InTransit, Fulfilled}
}

// IsFulfillmentVisible reports whether s belongs to FulfillmentVisibleStatuses.
func (s Status) IsFulfillmentVisible() bool {
	return s == Approved || s == Accepted || s == InTransit || s == Fulfilled
}

// ParseStatus converts the persisted/wire name (e.g. "IN_TRANSIT") into a Status.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known order status", name),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper snake case name, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible from s.
func (s Status) IsTerminal() bool {
	return s == Fulfilled || s == Rejected
}

// Approve transitions PENDING_APPROVAL -> APPROVED.
func (s Status) Approve() (Status, error) {
	if s != PendingApproval {
		return Unknown, s.transitionError(OperationApprove, PendingApproval)
	}
	return Approved, nil
}

// Reject transitions PENDING_APPROVAL -> REJECTED.
func (s Status) Reject() (Status, error) {
	if s != PendingApproval {
		return Unknown, s.transitionError(OperationReject, PendingApproval)
	}
	return Rejected, nil
}

// Accept transitions APPROVED -> ACCEPTED.
func (s Status) Accept() (Status, error) {
	if s != Approved {
		return Unknown, s.transitionError(OperationAccept, Approved)
	}
	return Accepted, nil
}

// Dispatch transitions APPROVED, ACCEPTED or IN_TRANSIT -> IN_TRANSIT.
//
// Example:
//
//	next, err := order.Approved.Dispatch()  // IN_TRANSIT, nil
//	next, err = order.InTransit.Dispatch()  // IN_TRANSIT, nil (re-dispatch)
//	next, err = order.Rejected.Dispatch()   // UNKNOWN, *errs.InvalidStateTransitionError
func (s Status) Dispatch() (Status, error) {
	if s != Approved && s != Accepted && s != InTransit {
		return Unknown, s.transitionError(OperationRecordDispatch, Approved, Accepted, InTransit)
	}
	return InTransit, nil
}

// Fulfill transitions IN_TRANSIT -> FULFILLED.
func (s Status) Fulfill() (Status, error) {
	if s != InTransit {
		return Unknown, s.transitionError(OperationMarkFulfilled, InTransit)
	}
	return Fulfilled, nil
}

func (s Status) transitionError(operation string, allowed ...Status) error {
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, a.String())
	}
	return errs.NewInvalidStateTransitionError(operation, s.String(), names...)
}
