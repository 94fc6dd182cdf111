package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a staff request to ship a paid order.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship the given order.
func NewShipOrderCommand(orderID kernel.UUID) (ShipOrderCommand, error) {
	shipCommand := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ShipOrderCommand{}, err
	}
	shipCommand.orderID = orderID

	return shipCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrShipOrderCommandIsNotConstructed if validation fails.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
