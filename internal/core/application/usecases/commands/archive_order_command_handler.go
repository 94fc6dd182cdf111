package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/ports"
)

// ArchiveOrderCommandHandler archives a single order on request.
// Archiving an order that is not RECEIVED is a no-op rather than an error,
// so retries and overlap with the batch archival job stay harmless.
type ArchiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewArchiveOrderCommandHandler creates a handler for the archive operation.
func NewArchiveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the archive command.
// Returns nil without modifying anything when the order is not RECEIVED.
func (h *ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) error {
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

	if aggregate.Status() != order.Received {
		return nil
	}

	if err = aggregate.Archive(); err != nil {
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
