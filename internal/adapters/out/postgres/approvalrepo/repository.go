package approvalrepo

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormApprovalRepository implements ports.ApprovalRepository using GORM.
type GormApprovalRepository struct {
	db *gorm.DB
}

func NewGormApprovalRepository(db *gorm.DB) *GormApprovalRepository {
	return &GormApprovalRepository{db: db}
}

// Save upserts the approval row of orderID.
func (r *GormApprovalRepository) Save(ctx context.Context, orderID kernel.UUID, approval *order.Approval) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if approval == nil {
		return errs.NewValueIsRequiredError("approval")
	}

	dto := FromDomain(orderID, approval)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
