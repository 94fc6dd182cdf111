package userrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/user"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserDirectory implements UserDirectory using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// GetByLogin retrieves the user registered under the given login.
func (r *GormUserDirectory) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	if login == "" {
		return nil, errs.NewValueIsRequiredError("login")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "login = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", login)
		}
		return nil, err
	}

	return toDomain(dto)
}
