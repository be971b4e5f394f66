package auth

import (
	"errors"
	"time"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// Claims embeds the registered claims plus the user id the token is bound to
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"userId"`
}

// TokenService issues and verifies signed bearer tokens. It holds no state
// beyond the signing secret; verification is a pure function over the token.
type TokenService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret []byte, ttl time.Duration, timeProvider coreport.TimeProvider) *TokenService {
	return &TokenService{
		secret:       secret,
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue embeds the identity and an expiry into a signed HS256 token.
func (s *TokenService) Issue(userID uint64) (string, error) {
	now := s.timeProvider.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(s.secret)
}

// Verify parses and validates a token and returns the embedded identity.
// Failures map onto the credential taxonomy: ErrMissingCredential for an
// empty token, ErrExpiredCredential when the expiry has passed, and
// ErrMalformedCredential for anything that does not parse or verify.
func (s *TokenService) Verify(tokenString string) (entity.Identity, error) {
	if tokenString == "" {
		return entity.Identity{}, errs.ErrMissingCredential
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrMalformedCredential
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.Identity{}, errs.ErrExpiredCredential
		}
		return entity.Identity{}, errs.ErrMalformedCredential
	}

	if !token.Valid || claims.UserID == 0 {
		return entity.Identity{}, errs.ErrMalformedCredential
	}

	return entity.Identity{UserID: claims.UserID}, nil
}
