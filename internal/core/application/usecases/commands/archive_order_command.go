package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand represents a request to archive a single order.
type ArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewArchiveOrderCommand creates a command to archive the given order.
func NewArchiveOrderCommand(orderID kernel.UUID) (ArchiveOrderCommand, error) {
	archiveCommand := ArchiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ArchiveOrderCommand{}, err
	}
	archiveCommand.orderID = orderID

	return archiveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrArchiveOrderCommandIsNotConstructed if validation fails.
func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to archive.
func (c ArchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
