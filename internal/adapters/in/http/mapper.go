package http

import (
	"ordering/internal/core/application/readmodel"
)

func toUser(u readmodel.UserRef) User {
	return User{
		Id:          u.ID.Bytes(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}

func toOrder(v readmodel.OrderView) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, OrderItem{
			ProductId:   it.ProductID.Bytes(),
			Sku:         it.SKU,
			ProductName: it.ProductName,
			ImageUrl:    it.ImageURL,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.String(),
			LineTotal:   it.LineTotal.String(),
		})
	}

	o := Order{
		Id:              v.ID.Bytes(),
		Status:          v.Status.String(),
		PlacedBy:        toUser(v.Owner),
		ShippingAddress: v.ShippingAddress,
		DeliveryAddress: v.DeliveryAddress,
		CustomerGst:     v.CustomerTaxID,
		Items:           items,
		Total:           v.Total.String(),
		CreatedAt:       v.CreatedAt,
	}

	if v.Approval != nil {
		o.Approval = &Approval{
			Status:    v.Approval.Status.String(),
			Comments:  v.Approval.Comments,
			DecidedAt: v.Approval.DecidedAt,
			Approver:  toUser(v.Approval.Approver),
		}
	}

	if v.CourierInfo != nil {
		o.CourierInfo = &CourierInfo{
			CourierName:    v.CourierInfo.CourierName,
			TrackingNumber: v.CourierInfo.TrackingNumber,
			DispatchDate:   v.CourierInfo.DispatchedAt,
		}
	}

	return o
}

func toOrders(views []readmodel.OrderView) []Order {
	orders := make([]Order, 0, len(views))
	for _, v := range views {
		orders = append(orders, toOrder(v))
	}
	return orders
}
