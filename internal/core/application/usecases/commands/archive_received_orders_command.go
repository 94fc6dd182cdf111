package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrArchiveReceivedOrdersCommandIsNotConstructed = errors.New(
	"ArchiveReceivedOrdersCommand must be created via NewArchiveReceivedOrdersCommand constructor",
)

// ArchiveReceivedOrdersCommand triggers archival of every RECEIVED order.
// This batch operation is the scheduled counterpart of ArchiveOrderCommand.
//
// Example:
//
//	cmd := NewArchiveReceivedOrdersCommand()
//	handler := NewArchiveReceivedOrdersCommandHandler(uowFactory, publisher)
//
//	// Run periodically to sweep finished orders into the archive
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Archival sweep failed: %v", err)
//	}
type ArchiveReceivedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewArchiveReceivedOrdersCommand creates a command to archive all received orders.
// This is a parameterless command that processes every order awaiting archival.
func NewArchiveReceivedOrdersCommand() ArchiveReceivedOrdersCommand {
	command := ArchiveReceivedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrArchiveReceivedOrdersCommandIsNotConstructed if validation fails.
func (c *ArchiveReceivedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveReceivedOrdersCommandIsNotConstructed)
}
