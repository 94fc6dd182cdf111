// Package tariffrepo provides read access to the tariff reference data.
// Destinations and order types are maintained by operations tooling outside
// this service, so the repository only ever reads them.
package tariffrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
)

// DestinationDTO represents the database structure for destination tariffs.
// A city pair appears at most once.
type DestinationDTO struct {
	ID            int64  `gorm:"primaryKey"`
	CityFrom      string `gorm:"index:idx_destinations_cities,unique"`
	CityTo        string `gorm:"index:idx_destinations_cities,unique"`
	DaysToDeliver int64
	PriceInCents  decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for destination tariffs.
func (DestinationDTO) TableName() string {
	return "destinations"
}

// OrderTypeDTO represents the database structure for order type tariffs.
type OrderTypeDTO struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex"`
	PriceInCents decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for order type tariffs.
func (OrderTypeDTO) TableName() string {
	return "order_types"
}

func destinationToDomain(dto DestinationDTO) (*tariff.Destination, error) {
	return tariff.NewDestination(
		dto.ID,
		dto.CityFrom,
		dto.CityTo,
		dto.DaysToDeliver,
		kernel.MoneyFromDecimal(dto.PriceInCents),
	)
}

func orderTypeToDomain(dto OrderTypeDTO) (*tariff.OrderType, error) {
	return tariff.NewOrderType(
		dto.ID,
		dto.Name,
		kernel.MoneyFromDecimal(dto.PriceInCents),
	)
}
