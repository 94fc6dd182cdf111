package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrPayOrderCommandIsNotConstructed = errors.New(
		"PayOrderCommand must be created via NewPayOrderCommand constructor",
	)
	ErrPayerAccountIDIsInvalid = errors.New("payer account id must be greater than 0")
)

// PayOrderCommand represents a request to settle an order from a card.
//
// Example:
//
//	cmd, err := NewPayOrderCommand(orderID, 4400000011112222, "alice")
//	if err != nil {
//	    return fmt.Errorf("invalid payment data: %w", err)
//	}
//
//	handler := NewPayOrderCommandHandler(uowFactory, users, settlement, collectorID, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("payment failed: %w", err)
//	}
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	payerAccountID int64
	login          string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay for an order.
// Validates that the order ID is valid, the card number is positive and the
// login is not empty.
func NewPayOrderCommand(orderID kernel.UUID, payerAccountID int64, login string) (PayOrderCommand, error) {
	payCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payCommand.setOrderID(orderID),
		payCommand.setPayerAccountID(payerAccountID),
		payCommand.setLogin(login),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return payCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPayOrderCommandIsNotConstructed if validation fails.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being settled.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PayerAccountID returns the card number to debit.
func (c PayOrderCommand) PayerAccountID() int64 {
	return c.payerAccountID
}

// Login returns the login of the user requesting payment.
func (c PayOrderCommand) Login() string {
	return c.login
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setPayerAccountID(payerAccountID int64) error {
	if payerAccountID <= 0 {
		return ErrPayerAccountIDIsInvalid
	}

	c.payerAccountID = payerAccountID
	return nil
}

func (c *PayOrderCommand) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	c.login = login
	return nil
}
