// Package kafka publishes order lifecycle events to a Kafka topic.
// Consumers downstream (notifications, analytics) follow order status
// changes without querying the service.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

// orderStatusChangedEvent is the wire format for order status notifications.
type orderStatusChangedEvent struct {
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderStatusPublisher writes order status change events to Kafka.
// Events are keyed by order ID, so every change of one order lands in the
// same partition and consumers see its transitions in order.
type OrderStatusPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewOrderStatusPublisher creates a publisher for the given brokers and topic.
// The writer requires acknowledgement from all replicas before reporting success.
func NewOrderStatusPublisher(brokers []string, topic string, logger *slog.Logger) *OrderStatusPublisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafkago.RequireAll,
		Balancer:     &kafkago.Hash{},
		Async:        false,
	}

	return &OrderStatusPublisher{
		writer: writer,
		logger: logger.With("component", "order_status_publisher"),
	}
}

// PublishStatusChanged sends a status change notification for the given order.
// Callers invoke this after their transaction commits; a broker failure is
// logged and returned but must not undo the committed state change.
func (p *OrderStatusPublisher) PublishStatusChanged(
	ctx context.Context,
	orderID kernel.UUID,
	status order.Status,
	occurredAt time.Time,
) error {
	event := orderStatusChangedEvent{
		OrderID:    orderID.String(),
		Status:     status.String(),
		OccurredAt: occurredAt.UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(orderID.String()),
		Value: value,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to publish order status change",
			"order_id", orderID.String(),
			"status", status.String(),
			"error", err)
		return err
	}

	return nil
}

// Close flushes pending messages and releases the underlying writer.
func (p *OrderStatusPublisher) Close() error {
	return p.writer.Close()
}
