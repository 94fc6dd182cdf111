package commands

import (
	"context"
	"time"

	"shipping/internal/core/ports"
)

// ShipOrderCommandHandler moves a paid order into SHIPPED status.
// The transit time comes from the destination frozen on the order at
// creation, so later tariff changes do not affect in-flight shipments.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	tariffs    ports.TariffRepository
	publisher  ports.OrderEventPublisher
}

// NewShipOrderCommandHandler creates a handler for the ship transition.
func NewShipOrderCommandHandler(
	uowFactory OrderUoWFactory,
	tariffs ports.TariffRepository,
	publisher ports.OrderEventPublisher,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		tariffs:    tariffs,
		publisher:  publisher,
	}
}

// Handle processes the ship command.
// Shipping stamps the shipping and estimated delivery dates; an order that
// is not PAID is rejected with an invalid state error.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	destination, err := h.tariffs.GetDestinationByID(ctx, aggregate.DestinationID())
	if err != nil {
		return err
	}

	if err = aggregate.Ship(time.Now().UTC(), destination.DaysToDeliver()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishStatusChanged(ctx, aggregate.ID(), aggregate.Status(), time.Now().UTC())

	return nil
}
