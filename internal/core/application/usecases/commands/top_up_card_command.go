package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrTopUpCardCommandIsNotConstructed = errors.New(
		"TopUpCardCommand must be created via NewTopUpCardCommand constructor",
	)
	ErrTopUpAmountIsInvalid = errors.New("top-up amount must be greater than 0")
)

// TopUpCardCommand represents a request to add funds to a registered card.
type TopUpCardCommand struct { //nolint:recvcheck //using for validation
	login  string
	cardID int64
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewTopUpCardCommand creates a command to top up a card balance.
// The amount must be strictly positive.
func NewTopUpCardCommand(login string, cardID int64, amount kernel.Money) (TopUpCardCommand, error) {
	topUpCommand := TopUpCardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		topUpCommand.setLogin(login),
		topUpCommand.setCardID(cardID),
		topUpCommand.setAmount(amount),
	); err != nil {
		return TopUpCardCommand{}, err
	}

	return topUpCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTopUpCardCommandIsNotConstructed if validation fails.
func (c TopUpCardCommand) Validate() error {
	return c.guard.Validate(ErrTopUpCardCommandIsNotConstructed)
}

// Login returns the login of the user topping up the card.
func (c TopUpCardCommand) Login() string {
	return c.login
}

// CardID returns the card number.
func (c TopUpCardCommand) CardID() int64 {
	return c.cardID
}

// Amount returns the amount to credit.
func (c TopUpCardCommand) Amount() kernel.Money {
	return c.amount
}

func (c *TopUpCardCommand) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	c.login = login
	return nil
}

func (c *TopUpCardCommand) setCardID(cardID int64) error {
	if cardID <= 0 {
		return ErrCardIDIsInvalid
	}

	c.cardID = cardID
	return nil
}

func (c *TopUpCardCommand) setAmount(amount kernel.Money) error {
	if amount.IsNegative() || amount.IsZero() {
		return ErrTopUpAmountIsInvalid
	}

	c.amount = amount
	return nil
}
