package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand asks a fulfillment agent to take over an approved order
// and ship it to deliveryAddress.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	agentUsername   string
	deliveryAddress string

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID kernel.UUID, agentUsername string, deliveryAddress string) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{guard: guard.NewConstructorGuard()}

	var errAgent, errAddress error
	if strings.TrimSpace(agentUsername) == "" {
		errAgent = errs.NewValueIsRequiredError("agent username")
	}
	if strings.TrimSpace(deliveryAddress) == "" {
		errAddress = errs.NewValueIsRequiredError("delivery address")
	}

	if err := errors.Join(orderID.Validate(), errAgent, errAddress); err != nil {
		return AcceptOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.agentUsername = strings.TrimSpace(agentUsername)
	cmd.deliveryAddress = strings.TrimSpace(deliveryAddress)
	return cmd, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AcceptOrderCommand) AgentUsername() string {
	return c.agentUsername
}

func (c AcceptOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}
