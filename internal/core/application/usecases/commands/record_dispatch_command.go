package commands

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRecordDispatchCommandIsNotConstructed = errors.New(
	"RecordDispatchCommand must be created via NewRecordDispatchCommand constructor",
)

// RecordDispatchCommand carries courier details for an order. The dispatch
// timestamp is taken as given and may lie in the past or the future.
//
// Example:
//
//	cmd, err := NewRecordDispatchCommand(orderID, "fulfil-1", "Delhivery", "DL123", dispatchedAt)
//	view, err := handler.Handle(ctx, cmd) // view.Status == order.InTransit
type RecordDispatchCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actorUsername string
	courierInfo   order.CourierInfo

	guard guard.ConstructorGuard
}

func NewRecordDispatchCommand(
	orderID kernel.UUID,
	actorUsername string,
	courierName string,
	trackingNumber string,
	dispatchedAt time.Time,
) (RecordDispatchCommand, error) {
	cmd := RecordDispatchCommand{guard: guard.NewConstructorGuard()}

	var errActor error
	if strings.TrimSpace(actorUsername) == "" {
		errActor = errs.NewValueIsRequiredError("actor username")
	}

	info, errInfo := order.NewCourierInfo(courierName, trackingNumber, dispatchedAt)

	if err := errors.Join(orderID.Validate(), errActor, errInfo); err != nil {
		return RecordDispatchCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorUsername = strings.TrimSpace(actorUsername)
	cmd.courierInfo = info
	return cmd, nil
}

func (c RecordDispatchCommand) Validate() error {
	return c.guard.Validate(ErrRecordDispatchCommandIsNotConstructed)
}

func (c RecordDispatchCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordDispatchCommand) ActorUsername() string {
	return c.actorUsername
}

func (c RecordDispatchCommand) CourierInfo() order.CourierInfo {
	return c.courierInfo
}
