package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLoginIsRequired       = errors.New("login is required")
	ErrDescriptionIsRequired = errors.New("description is required")
	ErrWeightIsInvalid       = errors.New("weight must be greater than 0")
	ErrOrderTypeIDIsInvalid  = errors.New("order type id must be greater than 0")
	ErrCityIsRequired        = errors.New("cityFrom and cityTo are required")
)

// CreateOrderCommand represents a request to create a new shipment order.
// Carries the parcel attributes and the tariff keys that will be resolved to
// reference data when the order is priced.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "alice", "books", weight, 1, "Moscow", "Kazan")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, users, tariffs, calculator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting payment", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	login       string
	description string
	weight      decimal.Decimal
	orderTypeID int64
	cityFrom    string
	cityTo      string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment order.
// Validates that the order ID is valid, textual fields are not empty and the
// weight is positive. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	login string,
	description string,
	weight decimal.Decimal,
	orderTypeID int64,
	cityFrom string,
	cityTo string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setLogin(login),
		orderCommand.setDescription(description),
		orderCommand.setWeight(weight),
		orderCommand.setOrderTypeID(orderTypeID),
		orderCommand.setCities(cityFrom, cityTo),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Login returns the login of the user creating the order.
func (c CreateOrderCommand) Login() string {
	return c.login
}

// Description returns the free-form parcel description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Weight returns the parcel weight.
func (c CreateOrderCommand) Weight() decimal.Decimal {
	return c.weight
}

// OrderTypeID returns the tariff order type key.
func (c CreateOrderCommand) OrderTypeID() int64 {
	return c.orderTypeID
}

// CityFrom returns the origin city.
func (c CreateOrderCommand) CityFrom() string {
	return c.cityFrom
}

// CityTo returns the destination city.
func (c CreateOrderCommand) CityTo() string {
	return c.cityTo
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}

	c.login = login
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateOrderCommand) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateOrderCommand) setOrderTypeID(orderTypeID int64) error {
	if orderTypeID <= 0 {
		return ErrOrderTypeIDIsInvalid
	}

	c.orderTypeID = orderTypeID
	return nil
}

func (c *CreateOrderCommand) setCities(cityFrom, cityTo string) error {
	if cityFrom == "" || cityTo == "" {
		return ErrCityIsRequired
	}

	c.cityFrom = cityFrom
	c.cityTo = cityTo
	return nil
}
