package tariffrepo

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// GetOrderType retrieves an order type by its identifier.
func (r *GormTariffRepository) GetOrderType(ctx context.Context, id int64) (*tariff.OrderType, error) {
	var dto OrderTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order type", id)
		}
		return nil, err
	}

	return orderTypeToDomain(dto)
}

// GetDestination retrieves the destination entry for a city pair.
func (r *GormTariffRepository) GetDestination(ctx context.Context, cityFrom, cityTo string) (*tariff.Destination, error) {
	var dto DestinationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "city_from = ? AND city_to = ?", cityFrom, cityTo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("destination", fmt.Sprintf("%s-%s", cityFrom, cityTo))
		}
		return nil, err
	}

	return destinationToDomain(dto)
}

// GetDestinationByID retrieves a destination by its identifier.
func (r *GormTariffRepository) GetDestinationByID(ctx context.Context, id int64) (*tariff.Destination, error) {
	var dto DestinationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("destination", id)
		}
		return nil, err
	}

	return destinationToDomain(dto)
}
