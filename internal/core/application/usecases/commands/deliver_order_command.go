package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a staff request to mark a shipped order delivered.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver the given order.
func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	deliverCommand := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return DeliverOrderCommand{}, err
	}
	deliverCommand.orderID = orderID

	return deliverCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverOrderCommandIsNotConstructed if validation fails.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
