package order

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ApprovalStatus is the decision recorded on an Approval.
type ApprovalStatus int

const (
	ApprovalUnknown ApprovalStatus = iota
	ApprovalPending
	ApprovalApproved
	ApprovalRejected
)

func (s ApprovalStatus) String() string {
	switch s {
	case ApprovalPending:
		return "PENDING"
	case ApprovalApproved:
		return "APPROVED"
	case ApprovalRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

func (s ApprovalStatus) Validate() error {
	if s < ApprovalPending || s > ApprovalRejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"approval status is invalid",
			fmt.Errorf("%d is not a valid approval status", s),
		)
	}
	return nil
}

// Approval is the single approve/reject decision of an order. It is created by
// the first decision and, because decisions are only possible from
// PENDING_APPROVAL, never changes afterwards.
type Approval struct {
	status     ApprovalStatus
	comments   string
	decidedAt  time.Time
	approverID kernel.UUID
}

// RestoreApproval rebuilds a persisted Approval.
func RestoreApproval(
	status ApprovalStatus,
	comments string,
	decidedAt time.Time,
	approverID kernel.UUID,
) (*Approval, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := approverID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("approver id", err)
	}

	return &Approval{
		status:     status,
		comments:   comments,
		decidedAt:  decidedAt,
		approverID: approverID,
	}, nil
}

func (a *Approval) Status() ApprovalStatus {
	return a.status
}

func (a *Approval) Comments() string {
	return a.comments
}

func (a *Approval) DecidedAt() time.Time {
	return a.decidedAt
}

func (a *Approval) ApproverID() kernel.UUID {
	return a.approverID
}
