package commands

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is one requested order line.
type ItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order on behalf of ownerUsername.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "alice", "12 MG Road, Pune", "",
//	    []ItemInput{{ProductID: hoodieID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	view, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	ownerUsername   string
	shippingAddress string
	customerTaxID   string
	items           []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. An empty item list yields errs.ErrEmptyOrder.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	ownerUsername string,
	shippingAddress string,
	customerTaxID string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerTaxID: strings.TrimSpace(customerTaxID),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerUsername(ownerUsername),
		cmd.setShippingAddress(shippingAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) OwnerUsername() string {
	return c.ownerUsername
}

func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c CreateOrderCommand) CustomerTaxID() string {
	return c.customerTaxID
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []ItemInput {
	items := make([]ItemInput, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errs.NewValueIsRequiredError("owner username")
	}
	c.ownerUsername = strings.TrimSpace(username)
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("shipping address")
	}
	c.shippingAddress = strings.TrimSpace(address)
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.ErrEmptyOrder
	}

	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", i), err)
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid",
				fmt.Errorf("items[%d]: %d is less than 1", i, item.Quantity),
			)
		}
	}

	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}
