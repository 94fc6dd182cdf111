package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var (
	ErrRegisterCardCommandIsNotConstructed = errors.New(
		"RegisterCardCommand must be created via NewRegisterCardCommand constructor",
	)
	ErrCardIDIsInvalid   = errors.New("card number must be greater than 0")
	ErrExpMonthIsInvalid = errors.New("expiry month must be within 1..12")
	ErrExpYearIsInvalid  = errors.New("expiry year must be greater than 0")
	ErrCardCodeIsInvalid = errors.New("verification code must be greater than 0")
)

// RegisterCardCommand represents a request to register a bank card for a user.
// Registering an already known card links it to the additional user; the
// supplied expiry and code must match the stored card exactly.
type RegisterCardCommand struct { //nolint:recvcheck //using for validation
	login    string
	cardID   int64
	expMonth int
	expYear  int
	code     int64

	guard guard.ConstructorGuard
}

// NewRegisterCardCommand creates a command to register a card.
// Validates the login and the card attributes.
func NewRegisterCardCommand(login string, cardID int64, expMonth, expYear int, code int64) (RegisterCardCommand, error) {
	registerCommand := RegisterCardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setLogin(login),
		registerCommand.setCardID(cardID),
		registerCommand.setExpiry(expMonth, expYear),
		registerCommand.setCode(code),
	); err != nil {
		return RegisterCardCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterCardCommandIsNotConstructed if validation fails.
func (c RegisterCardCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCardCommandIsNotConstructed)
}

// Login returns the login of the user registering the card.
func (c RegisterCardCommand) Login() string {
	return c.login
}

// CardID returns the card number.
func (c RegisterCardCommand) CardID() int64 {
	return c.cardID
}

// ExpMonth returns the card expiry month.
func (c RegisterCardCommand) ExpMonth() int {
	return c.expMonth
}

// ExpYear returns the card expiry year.
func (c RegisterCardCommand) ExpYear() int {
	return c.expYear
}

// Code returns the card verification code.
func (c RegisterCardCommand) Code() int64 {
	return c.code
}

func (c *RegisterCardCommand) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	c.login = login
	return nil
}

func (c *RegisterCardCommand) setCardID(cardID int64) error {
	if cardID <= 0 {
		return ErrCardIDIsInvalid
	}

	c.cardID = cardID
	return nil
}

func (c *RegisterCardCommand) setExpiry(expMonth, expYear int) error {
	if expMonth < 1 || expMonth > 12 {
		return ErrExpMonthIsInvalid
	}
	if expYear <= 0 {
		return ErrExpYearIsInvalid
	}

	c.expMonth = expMonth
	c.expYear = expYear
	return nil
}

func (c *RegisterCardCommand) setCode(code int64) error {
	if code <= 0 {
		return ErrCardCodeIsInvalid
	}

	c.code = code
	return nil
}
