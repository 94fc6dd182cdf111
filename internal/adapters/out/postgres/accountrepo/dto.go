// Package accountrepo provides data transfer objects and mapping functions for
// bank card persistence. Cards are shared aggregates, so ownership lives in a
// separate link table next to the card rows.
package accountrepo

import (
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountDTO represents the database structure for persisting card accounts.
// The card number is the primary key.
type AccountDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement:false"`
	ExpMonth int
	ExpYear  int
	Code     int64
	Balance  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for card entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// AccountOwnerDTO links a card to a user that registered it.
// The composite primary key makes repeated links harmless.
type AccountOwnerDTO struct {
	AccountID int64     `gorm:"primaryKey;autoIncrement:false"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for card ownership links.
func (AccountOwnerDTO) TableName() string {
	return "account_owners"
}

// fromDomain converts a card account aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:       aggregate.ID(),
		ExpMonth: aggregate.ExpMonth(),
		ExpYear:  aggregate.ExpYear(),
		Code:     aggregate.Code(),
		Balance:  aggregate.Balance().Decimal(),
	}
}

// toDomain converts a database DTO to a card account aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	return account.RestoreAccount(
		dto.ID,
		dto.ExpMonth,
		dto.ExpYear,
		dto.Code,
		kernel.MoneyFromDecimal(dto.Balance),
	)
}
