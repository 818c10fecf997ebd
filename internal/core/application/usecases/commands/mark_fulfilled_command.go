package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrMarkFulfilledCommandIsNotConstructed = errors.New(
	"MarkFulfilledCommand must be created via NewMarkFulfilledCommand constructor",
)

// MarkFulfilledCommand records that an in-transit order was delivered.
type MarkFulfilledCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actorUsername string

	guard guard.ConstructorGuard
}

func NewMarkFulfilledCommand(orderID kernel.UUID, actorUsername string) (MarkFulfilledCommand, error) {
	var errActor error
	if strings.TrimSpace(actorUsername) == "" {
		errActor = errs.NewValueIsRequiredError("actor username")
	}

	if err := errors.Join(orderID.Validate(), errActor); err != nil {
		return MarkFulfilledCommand{}, err
	}

	return MarkFulfilledCommand{
		orderID:       orderID,
		actorUsername: strings.TrimSpace(actorUsername),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c MarkFulfilledCommand) Validate() error {
	return c.guard.Validate(ErrMarkFulfilledCommandIsNotConstructed)
}

func (c MarkFulfilledCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkFulfilledCommand) ActorUsername() string {
	return c.actorUsername
}
