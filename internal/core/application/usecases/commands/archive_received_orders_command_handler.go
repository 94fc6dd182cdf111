package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/ports"
)

// ArchiveReceivedOrdersCommandHandler sweeps RECEIVED orders older than the
// configured retention into the archive. Receipt itself is not timestamped,
// so the delivery date anchors an order's age; an order with no delivery
// date on record is archived unconditionally. All matched orders are
// archived within a single transaction; events are published only after the
// commit succeeds.
type ArchiveReceivedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	retention  time.Duration
	publisher  ports.OrderEventPublisher
}

// NewArchiveReceivedOrdersCommandHandler creates a handler for the archival
// sweep. A zero or negative retention archives every RECEIVED order on the
// first sweep after receipt.
func NewArchiveReceivedOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	retention time.Duration,
	publisher ports.OrderEventPublisher,
) ArchiveReceivedOrdersCommandHandler {
	return ArchiveReceivedOrdersCommandHandler{
		uowFactory: uowFactory,
		retention:  retention,
		publisher:  publisher,
	}
}

// Handle processes the archival sweep command.
// Retrieves all orders in RECEIVED status and archives those delivered
// before the retention cutoff. A sweep that finds nothing to archive
// commits an empty transaction and returns nil.
func (h *ArchiveReceivedOrdersCommandHandler) Handle(ctx context.Context, cmd ArchiveReceivedOrdersCommand) error {
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

	received, err := orderRepo.GetAllInStatus(ctx, order.Received)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-h.retention)

	archived := make([]*order.Order, 0, len(received))
	for _, aggregate := range received {
		if deliveredAt := aggregate.DeliveryDate(); deliveredAt != nil && deliveredAt.After(cutoff) {
			continue
		}

		if err = aggregate.Archive(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		archived = append(archived, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, aggregate := range archived {
		_ = h.publisher.PublishStatusChanged(ctx, aggregate.ID(), aggregate.Status(), now)
	}

	return nil
}
