package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrApproveOrderCommandIsNotConstructed = errors.New(
		"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
	)
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
)

// decision holds the fields shared by approve and reject.
type decision struct {
	orderID          kernel.UUID
	approverUsername string
	comments         string
}

func newDecision(orderID kernel.UUID, approverUsername string, comments string) (decision, error) {
	d := decision{comments: strings.TrimSpace(comments)}

	var errApprover error
	if strings.TrimSpace(approverUsername) == "" {
		errApprover = errs.NewValueIsRequiredError("approver username")
	}

	if err := errors.Join(orderID.Validate(), errApprover); err != nil {
		return decision{}, err
	}

	d.orderID = orderID
	d.approverUsername = strings.TrimSpace(approverUsername)
	return d, nil
}

// ApproveOrderCommand asks to approve a pending order. Comments are optional.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	decision
	guard guard.ConstructorGuard
}

func NewApproveOrderCommand(orderID kernel.UUID, approverUsername string, comments string) (ApproveOrderCommand, error) {
	d, err := newDecision(orderID, approverUsername, comments)
	if err != nil {
		return ApproveOrderCommand{}, err
	}
	return ApproveOrderCommand{decision: d, guard: guard.NewConstructorGuard()}, nil
}

func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

func (c ApproveOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c ApproveOrderCommand) ApproverUsername() string { return c.approverUsername }
func (c ApproveOrderCommand) Comments() string         { return c.comments }

// RejectOrderCommand asks to reject a pending order. Whether comments are
// mandatory is a policy decision of the caller.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	decision
	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(orderID kernel.UUID, approverUsername string, comments string) (RejectOrderCommand, error) {
	d, err := newDecision(orderID, approverUsername, comments)
	if err != nil {
		return RejectOrderCommand{}, err
	}
	return RejectOrderCommand{decision: d, guard: guard.NewConstructorGuard()}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c RejectOrderCommand) ApproverUsername() string { return c.approverUsername }
func (c RejectOrderCommand) Comments() string         { return c.comments }
