package persistence

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
)

// UserRepository defines data access operations for user accounts
type UserRepository interface {
	// Create persists a new user. A unique-constraint violation on email or
	// username is returned as ErrDuplicateAccount.
	Create(ctx context.Context, user *entity.User) error

	// GetByEmail retrieves a user by email, ErrNotFound when absent
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether an account with the given
	// email or username already exists
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}
