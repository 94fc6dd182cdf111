// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by owner and lifecycle status.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	Description   string
	Weight        decimal.Decimal `gorm:"type:numeric"`
	OrderTypeID   int64
	DestinationID int64
	PriceInCents  decimal.Decimal `gorm:"type:numeric"`
	Status        string          `gorm:"index"`
	ShippingDate  *time.Time
	DeliveryDate  *time.Time
	PaymentID     *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// The status is stored as its canonical string so raw SQL queries and humans
// reading the table see the same words as the API.
func fromDomain(aggregate *order.Order) OrderDTO {
	var paymentID *uuid.UUID
	if id := aggregate.PaymentID(); id != nil {
		raw := id.Bytes()
		paymentID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Description:   aggregate.Description(),
		Weight:        aggregate.Weight(),
		OrderTypeID:   aggregate.OrderTypeID(),
		DestinationID: aggregate.DestinationID(),
		PriceInCents:  aggregate.PriceInCents().Decimal(),
		Status:        aggregate.Status().String(),
		ShippingDate:  aggregate.ShippingDate(),
		DeliveryDate:  aggregate.DeliveryDate(),
		PaymentID:     paymentID,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and payment link using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var paymentID *kernel.UUID
	if dto.PaymentID != nil {
		pID, paymentErr := kernel.UUIDFromBytes((*dto.PaymentID)[:])
		if paymentErr != nil {
			return nil, paymentErr
		}

		paymentID = &pID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		ownerID,
		dto.Description,
		dto.Weight,
		dto.OrderTypeID,
		dto.DestinationID,
		kernel.MoneyFromDecimal(dto.PriceInCents),
		status,
		dto.ShippingDate,
		dto.DeliveryDate,
		paymentID,
	)
}
