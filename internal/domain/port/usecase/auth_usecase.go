package usecase

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
)

// AuthResult is returned by registration and login: a signed bearer token
// plus the account it is bound to.
type AuthResult struct {
	Token string
	User  *entity.User
}

// AuthUseCase defines the account creation and authentication operations
type AuthUseCase interface {
	// Register creates a new account with a sequence-allocated user id and
	// returns a freshly issued token. Fails with ErrDuplicateAccount when
	// the email or username is taken.
	Register(ctx context.Context, username, email, plainPassword string) (*AuthResult, error)

	// Login authenticates by email and password. Unknown email and wrong
	// password fail uniformly with ErrInvalidCredential.
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

// TokenVerifier extracts the verified identity from a bearer token. It is
// the authorization boundary: every protected operation uses the identity
// it returns and nothing else.
type TokenVerifier interface {
	Verify(token string) (entity.Identity, error)
}
