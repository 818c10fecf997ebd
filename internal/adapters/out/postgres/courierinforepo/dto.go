// Package courierinforepo persists the dispatch ledger: the courier name,
// tracking number and dispatch time recorded for an order.
package courierinforepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CourierInfoDTO is one row of the courier_infos table. Re-dispatching an
// order overwrites its row.
type CourierInfoDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierName    string    `gorm:"type:varchar(255);not null"`
	TrackingNumber string    `gorm:"type:varchar(255);not null;index"`
	DispatchedAt   time.Time `gorm:"not null"`
}

func (CourierInfoDTO) TableName() string {
	return "courier_infos"
}

func FromDomain(orderID kernel.UUID, info order.CourierInfo) CourierInfoDTO {
	return CourierInfoDTO{
		OrderID:        orderID.Bytes(),
		CourierName:    info.CourierName(),
		TrackingNumber: info.TrackingNumber(),
		DispatchedAt:   info.DispatchedAt(),
	}
}

func ToDomain(dto CourierInfoDTO) (*order.CourierInfo, error) {
	info, err := order.NewCourierInfo(dto.CourierName, dto.TrackingNumber, dto.DispatchedAt)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
