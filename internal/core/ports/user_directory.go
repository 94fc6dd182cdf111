package ports

import (
	"context"

	"shipping/internal/core/domain/model/user"
)

// UserDirectory resolves request logins to user identities. Accounts are
// provisioned elsewhere; the directory is read-only from the core's
// perspective.
type UserDirectory interface {
	// GetByLogin retrieves the user registered under the given login.
	// Returns errs.ObjectNotFoundError if the login is unknown.
	GetByLogin(ctx context.Context, login string) (*user.User, error)
}
