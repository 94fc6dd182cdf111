// Package paymentrepo provides data transfer objects and mapping functions
// for payment receipt persistence. Receipts are append-only; the single
// supported mutation is nulling the card reference when a card is removed.
package paymentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment receipts.
type PaymentDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;index"`
	AccountID    *int64          `gorm:"index"`
	UserID       uuid.UUID       `gorm:"type:uuid;index"`
	PriceInCents decimal.Decimal `gorm:"type:numeric"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment receipt to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		AccountID:    aggregate.AccountID(),
		UserID:       aggregate.UserID().Bytes(),
		PriceInCents: aggregate.PriceInCents().Decimal(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment receipt.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		orderID,
		dto.AccountID,
		userID,
		kernel.MoneyFromDecimal(dto.PriceInCents),
		dto.CreatedAt,
	)
}
