package accountrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new card to the database.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("card", aggregate.ID(), err)
		}
		return err
	}

	return nil
}

// Update saves an existing card to the database.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("card", aggregate.ID())
	}

	return nil
}

// Get retrieves a card by its number.
func (r *GormAccountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("card", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a card by its number and takes a FOR UPDATE row
// lock. The lock is held until the surrounding transaction commits or rolls
// back; callers locking several cards must do so in ascending number order.
func (r *GormAccountRepository) GetForUpdate(ctx context.Context, id int64) (*account.Account, error) {
	var dto AccountDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("card", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a card and its ownership links.
func (r *GormAccountRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&AccountOwnerDTO{}, "account_id = ?", id).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AccountDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("card", id)
	}

	return nil
}

// Link records that the given user registered the card.
// The composite primary key turns a repeated link into a no-op.
func (r *GormAccountRepository) Link(ctx context.Context, id int64, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	dto := AccountOwnerDTO{
		AccountID: id,
		UserID:    userID.Bytes(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}

// Unlink removes the ownership link between the card and the user and
// returns how many owners remain.
func (r *GormAccountRepository) Unlink(ctx context.Context, id int64, userID kernel.UUID) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Delete(&AccountOwnerDTO{}, "account_id = ? AND user_id = ?", id, userID.Bytes())
	if result.Error != nil {
		return 0, result.Error
	}

	var remaining int64
	err := r.db.WithContext(ctx).
		Model(&AccountOwnerDTO{}).
		Where("account_id = ?", id).
		Count(&remaining).Error
	if err != nil {
		return 0, err
	}

	return remaining, nil
}

// OwnedBy reports whether the given user has the card registered.
func (r *GormAccountRepository) OwnedBy(ctx context.Context, id int64, userID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&AccountOwnerDTO{}).
		Where("account_id = ? AND user_id = ?", id, userID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
