// Package approvalrepo persists the approval ledger: at most one approve or
// reject decision per order.
package approvalrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ApprovalDTO is one row of the approvals table, keyed by the order it decides.
type ApprovalDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status     int       `gorm:"type:smallint;not null"`
	Comments   string    `gorm:"type:text"`
	DecidedAt  time.Time `gorm:"not null"`
	ApproverID uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (ApprovalDTO) TableName() string {
	return "approvals"
}

// FromDomain maps the approval of orderID to its row.
func FromDomain(orderID kernel.UUID, approval *order.Approval) ApprovalDTO {
	return ApprovalDTO{
		OrderID:    orderID.Bytes(),
		Status:     int(approval.Status()),
		Comments:   approval.Comments(),
		DecidedAt:  approval.DecidedAt(),
		ApproverID: approval.ApproverID().Bytes(),
	}
}

// ToDomain rebuilds the approval value from its row.
func ToDomain(dto ApprovalDTO) (*order.Approval, error) {
	approverID, err := kernel.UUIDFromGoogle(dto.ApproverID)
	if err != nil {
		return nil, err
	}

	return order.RestoreApproval(order.ApprovalStatus(dto.Status), dto.Comments, dto.DecidedAt, approverID)
}
