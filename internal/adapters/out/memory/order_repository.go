package memory

import (
	"context"
	"sort"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

var (
	_ ports.OrderRepository       = (*OrderRepository)(nil)
	_ ports.ApprovalRepository    = (*ApprovalRepository)(nil)
	_ ports.CourierInfoRepository = (*CourierInfoRepository)(nil)
)

type OrderRepository struct {
	access access
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.access.write(func(t *tables) error {
		if _, ok := t.orders[aggregate.ID()]; ok {
			return errs.NewValueIsInvalidError("order id")
		}

		t.seq++
		t.orders[aggregate.ID()] = orderRecord{
			id:              aggregate.ID(),
			ownerID:         aggregate.OwnerID(),
			status:          aggregate.Status(),
			shippingAddress: aggregate.ShippingAddress(),
			deliveryAddress: aggregate.DeliveryAddress(),
			customerTaxID:   aggregate.CustomerTaxID(),
			createdAt:       aggregate.CreatedAt(),
			items:           aggregate.Items(),
			seq:             t.seq,
		}
		return nil
	})
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.access.write(func(t *tables) error {
		rec, ok := t.orders[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		rec.status = aggregate.Status()
		rec.deliveryAddress = aggregate.DeliveryAddress()
		t.orders[aggregate.ID()] = rec
		return nil
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var result *order.Order
	err := r.access.read(func(t *tables) error {
		rec, ok := t.orders[id]
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}

		o, err := t.restore(rec)
		if err != nil {
			return err
		}
		result = o
		return nil
	})
	return result, err
}

// GetForUpdate relies on the store-wide transaction lock held since Begin.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r *OrderRepository) ListByOwner(_ context.Context, ownerID kernel.UUID) ([]*order.Order, error) {
	return r.list(func(rec orderRecord) bool {
		return rec.ownerID == ownerID
	})
}

func (r *OrderRepository) ListAll(_ context.Context) ([]*order.Order, error) {
	return r.list(func(orderRecord) bool {
		return true
	})
}

func (r *OrderRepository) ListByStatuses(_ context.Context, statuses ...order.Status) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}

	wanted := make(map[order.Status]struct{}, len(statuses))
	for _, s := range statuses {
		wanted[s] = struct{}{}
	}

	return r.list(func(rec orderRecord) bool {
		_, ok := wanted[rec.status]
		return ok
	})
}

// list returns matching orders newest first, insertion order breaking ties.
func (r *OrderRepository) list(match func(orderRecord) bool) ([]*order.Order, error) {
	var result []*order.Order
	err := r.access.read(func(t *tables) error {
		records := make([]orderRecord, 0, len(t.orders))
		for _, rec := range t.orders {
			if match(rec) {
				records = append(records, rec)
			}
		}

		sort.Slice(records, func(i, j int) bool {
			if !records[i].createdAt.Equal(records[j].createdAt) {
				return records[i].createdAt.After(records[j].createdAt)
			}
			return records[i].seq > records[j].seq
		})

		result = make([]*order.Order, 0, len(records))
		for _, rec := range records {
			o, err := t.restore(rec)
			if err != nil {
				return err
			}
			result = append(result, o)
		}
		return nil
	})
	return result, err
}

// restore joins an order row with its approval and courier rows.
func (t *tables) restore(rec orderRecord) (*order.Order, error) {
	var approval *order.Approval
	if a, ok := t.approvals[rec.id]; ok {
		approval = &a
	}

	var courierInfo *order.CourierInfo
	if c, ok := t.courierInfos[rec.id]; ok {
		courierInfo = &c
	}

	return order.RestoreOrder(
		rec.id,
		rec.ownerID,
		rec.status,
		rec.shippingAddress,
		rec.deliveryAddress,
		rec.customerTaxID,
		rec.createdAt,
		append([]order.Item(nil), rec.items...),
		approval,
		courierInfo,
	)
}

type ApprovalRepository struct {
	access access
}

func (r *ApprovalRepository) Save(_ context.Context, orderID kernel.UUID, approval *order.Approval) error {
	if approval == nil {
		return errs.NewValueIsRequiredError("approval")
	}

	return r.access.write(func(t *tables) error {
		if _, ok := t.orders[orderID]; !ok {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		t.approvals[orderID] = *approval
		return nil
	})
}

type CourierInfoRepository struct {
	access access
}

func (r *CourierInfoRepository) Save(_ context.Context, orderID kernel.UUID, info order.CourierInfo) error {
	return r.access.write(func(t *tables) error {
		if _, ok := t.orders[orderID]; !ok {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		t.courierInfos[orderID] = info
		return nil
	})
}
