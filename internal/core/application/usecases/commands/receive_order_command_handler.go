package commands

import (
	"context"
	"time"

	"shipping/internal/core/ports"
)

// ReceiveOrderCommandHandler moves a delivered order into RECEIVED status.
// Received orders are picked up by the archival job later.
type ReceiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewReceiveOrderCommandHandler creates a handler for the receive transition.
func NewReceiveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ReceiveOrderCommandHandler {
	return ReceiveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the receive command.
// An order that is not DELIVERED is rejected with an invalid state error.
func (h *ReceiveOrderCommandHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) error {
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

	if err = aggregate.Receive(); err != nil {
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
