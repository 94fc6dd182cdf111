// Package user provides the minimal owning identity orders and payments
// reference. Registration, credentials and sessions are handled outside
// the core; here a user is an id plus a unique login.
package user

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created via NewUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser")

// User is the owning identity resolved from a login.
type User struct {
	id    kernel.UUID
	login string

	isConstructed bool
}

// NewUser creates a User identity.
func NewUser(id kernel.UUID, login string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if login == "" {
		return nil, errs.NewValueIsRequiredError("login")
	}

	return &User{
		id:            id,
		login:         login,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Login returns the unique login.
func (u *User) Login() string {
	return u.login
}
