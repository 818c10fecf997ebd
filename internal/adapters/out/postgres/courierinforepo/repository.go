package courierinforepo

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierInfoRepository implements ports.CourierInfoRepository using GORM.
type GormCourierInfoRepository struct {
	db *gorm.DB
}

func NewGormCourierInfoRepository(db *gorm.DB) *GormCourierInfoRepository {
	return &GormCourierInfoRepository{db: db}
}

// Save inserts the courier row of orderID or updates it in place.
func (r *GormCourierInfoRepository) Save(ctx context.Context, orderID kernel.UUID, info order.CourierInfo) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	dto := FromDomain(orderID, info)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"courier_name", "tracking_number", "dispatched_at"}),
		}).
		Create(&dto).Error
}
