package auth

import (
	"context"
	"errors"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/persistence"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
)

// UserIDSequence is the counter name user ids are allocated from. The
// sequence starts at DefaultUserIDStart, so the first registration gets
// DefaultUserIDStart + 1.
const (
	UserIDSequence     = "user_id"
	DefaultUserIDStart = 1000
)

// Service implements registration and login. Registration is the only path
// that touches the user id sequence.
type Service struct {
	users        persistence.UserRepository
	sequences    persistence.SequenceRepository
	tokens       *TokenService
	userIDStart  int64
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the auth service
func NewService(
	users persistence.UserRepository,
	sequences persistence.SequenceRepository,
	tokens *TokenService,
	userIDStart int64,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:        users,
		sequences:    sequences,
		tokens:       tokens,
		userIDStart:  userIDStart,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register creates an account and returns a freshly issued token.
//
// The existence pre-check and the insert are not atomic as a whole; two
// concurrent registrations for the same email can both pass the check. The
// unique constraints on email and username are the backstop: the losing
// insert comes back as ErrDuplicateAccount from the repository, never as a
// raw store error.
func (s *Service) Register(ctx context.Context, username, email, plainPassword string) (*usecase.AuthResult, error) {
	exists, err := s.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrDuplicateAccount
	}

	userID, err := s.sequences.Next(ctx, UserIDSequence, s.userIDStart)
	if err != nil {
		s.logger.Error("Failed to allocate user id", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	user, err := entity.NewUser(uint64(userID), username, email, plainPassword, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateAccount) {
			s.logger.Warn("Registration lost duplicate race", map[string]any{
				"email": email,
			})
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id":  user.ID,
		"username": username,
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (*usecase.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidCredential
		}
		return nil, err
	}

	if !user.CheckPassword(plainPassword) {
		return nil, errs.ErrInvalidCredential
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return &usecase.AuthResult{Token: token, User: user}, nil
}
