package commands

import (
	"context"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the owner and tariff references, freezes the computed price on the
// order and persists it in NOT_PAID status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, users, tariffs, calculator)
//	orderID := kernel.NewUUID()
//	cmd, _ := NewCreateOrderCommand(orderID, "alice", "books", weight, 1, "Moscow", "Kazan")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and ready for payment
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserDirectory
	tariffs    ports.TariffRepository
	calculator services.PriceCalculator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence plus the user
// directory, tariff repository and price calculator used to build the order.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserDirectory,
	tariffs ports.TariffRepository,
	calculator services.PriceCalculator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		tariffs:    tariffs,
		calculator: calculator,
	}
}

// Handle processes the order creation command.
// Resolves the owner, order type and destination; any unresolvable reference
// aborts before anything is persisted. The price is computed once here and
// frozen on the order, so later tariff changes never reprice it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	owner, err := h.users.GetByLogin(ctx, cmd.Login())
	if err != nil {
		return err
	}

	orderType, err := h.tariffs.GetOrderType(ctx, cmd.OrderTypeID())
	if err != nil {
		return err
	}

	destination, err := h.tariffs.GetDestination(ctx, cmd.CityFrom(), cmd.CityTo())
	if err != nil {
		return err
	}

	price, err := h.calculator.Calculate(destination, orderType, cmd.Weight())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		owner.ID(),
		cmd.Description(),
		cmd.Weight(),
		orderType.ID(),
		destination.ID(),
		price,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
