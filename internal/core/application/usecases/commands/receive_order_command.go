package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrReceiveOrderCommandIsNotConstructed = errors.New(
	"ReceiveOrderCommand must be created via NewReceiveOrderCommand constructor",
)

// ReceiveOrderCommand represents a confirmation that the customer picked up
// a delivered order.
type ReceiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReceiveOrderCommand creates a command to mark the given order received.
func NewReceiveOrderCommand(orderID kernel.UUID) (ReceiveOrderCommand, error) {
	receiveCommand := ReceiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ReceiveOrderCommand{}, err
	}
	receiveCommand.orderID = orderID

	return receiveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReceiveOrderCommandIsNotConstructed if validation fails.
func (c ReceiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark received.
func (c ReceiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
