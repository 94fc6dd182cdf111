package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrRemoveCardCommandIsNotConstructed = errors.New(
	"RemoveCardCommand must be created via NewRemoveCardCommand constructor",
)

// RemoveCardCommand represents a request to remove a card registration.
type RemoveCardCommand struct { //nolint:recvcheck //using for validation
	login  string
	cardID int64

	guard guard.ConstructorGuard
}

// NewRemoveCardCommand creates a command to remove a card for a user.
func NewRemoveCardCommand(login string, cardID int64) (RemoveCardCommand, error) {
	removeCommand := RemoveCardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setLogin(login),
		removeCommand.setCardID(cardID),
	); err != nil {
		return RemoveCardCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveCardCommandIsNotConstructed if validation fails.
func (c RemoveCardCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCardCommandIsNotConstructed)
}

// Login returns the login of the user removing the card.
func (c RemoveCardCommand) Login() string {
	return c.login
}

// CardID returns the card number.
func (c RemoveCardCommand) CardID() int64 {
	return c.cardID
}

func (c *RemoveCardCommand) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	c.login = login
	return nil
}

func (c *RemoveCardCommand) setCardID(cardID int64) error {
	if cardID <= 0 {
		return ErrCardIDIsInvalid
	}

	c.cardID = cardID
	return nil
}
