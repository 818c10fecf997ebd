// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// The order row owns its items; approval and courier rows are loaded with it but are
// written through their own repositories.
package orderrepo

import (
	"time"

	"ordering/internal/adapters/out/postgres/approvalrepo"
	"ordering/internal/adapters/out/postgres/courierinforepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID                       `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID                       `gorm:"type:uuid;not null;index"`
	Status          int                             `gorm:"type:smallint;not null;index"`
	ShippingAddress string                          `gorm:"type:text;not null"`
	DeliveryAddress string                          `gorm:"type:text"`
	CustomerTaxID   string                          `gorm:"type:varchar(64)"`
	CreatedAt       time.Time                       `gorm:"not null;index"`
	Items           []OrderItemDTO                  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Approval        *approvalrepo.ApprovalDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CourierInfo     *courierinforepo.CourierInfoDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. The unit price is the catalog price at the
// time the order was placed.
type OrderItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"type:smallint;not null"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain maps the order row and its items. Approval and courier details
// are left out: they have their own repositories.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Position:  i,
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:              orderID,
		OwnerID:         aggregate.OwnerID().Bytes(),
		Status:          int(aggregate.Status()),
		ShippingAddress: aggregate.ShippingAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CustomerTaxID:   aggregate.CustomerTaxID(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
	}
}

// toDomain rebuilds the aggregate with RestoreOrder, which also checks that
// the approval and courier rows agree with the status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromGoogle(dto.OwnerID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var approval *order.Approval
	if dto.Approval != nil {
		if approval, err = approvalrepo.ToDomain(*dto.Approval); err != nil {
			return nil, err
		}
	}

	var courierInfo *order.CourierInfo
	if dto.CourierInfo != nil {
		if courierInfo, err = courierinforepo.ToDomain(*dto.CourierInfo); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		ownerID,
		order.Status(dto.Status),
		dto.ShippingAddress,
		dto.DeliveryAddress,
		dto.CustomerTaxID,
		dto.CreatedAt,
		items,
		approval,
		courierInfo,
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromGoogle(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, dto.Quantity, price)
}
