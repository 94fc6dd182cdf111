package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// OrderEventPublisher announces order status changes to interested
// downstream systems. Publishing happens after the owning transaction has
// committed; a publish failure must not undo the state change, so
// implementations log and move on rather than return fatal errors.
type OrderEventPublisher interface {
	// PublishStatusChanged emits an event describing the order's new status.
	PublishStatusChanged(ctx context.Context, orderID kernel.UUID, status order.Status, occurredAt time.Time) error
}
