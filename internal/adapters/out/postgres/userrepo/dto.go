// Package userrepo resolves request logins to user identities.
// User provisioning happens outside this service; the repository is the
// read-only directory the core consults per request.
package userrepo

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user identities.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login string    `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, dto.Login)
}
