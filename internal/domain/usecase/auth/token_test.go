package auth

import (
	"context"
	"testing"
	"time"

	errs "github.com/fintrackhq/fintrack-server/internal/domain/error"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time                  { return s.now }
func (s stubClock) Since(t time.Time) time.Duration { return s.now.Sub(t) }
func (s stubClock) WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-signing-secret"), 24*time.Hour, stubClock{now: time.Now()})

	token, err := svc.Issue(1001)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1001), identity.UserID)
}

func TestTokenVerifyMissing(t *testing.T) {
	svc := NewTokenService([]byte("test-signing-secret"), 24*time.Hour, stubClock{now: time.Now()})

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, errs.ErrMissingCredential)
}

func TestTokenVerifyExpired(t *testing.T) {
	// Issued two days ago with a one day lifetime
	svc := NewTokenService([]byte("test-signing-secret"), 24*time.Hour, stubClock{now: time.Now().Add(-48 * time.Hour)})

	token, err := svc.Issue(1001)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, errs.ErrExpiredCredential)
}

func TestTokenVerifyMalformed(t *testing.T) {
	svc := NewTokenService([]byte("test-signing-secret"), 24*time.Hour, stubClock{now: time.Now()})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.ErrorIs(t, err, errs.ErrMalformedCredential)
	})

	t.Run("Tampered payload", func(t *testing.T) {
		token, err := svc.Issue(1001)
		require.NoError(t, err)

		_, err = svc.Verify(token + "x")
		assert.ErrorIs(t, err, errs.ErrMalformedCredential)
	})

	t.Run("Signed with a different secret", func(t *testing.T) {
		other := NewTokenService([]byte("some-other-secret"), 24*time.Hour, stubClock{now: time.Now()})
		token, err := other.Issue(1001)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, errs.ErrMalformedCredential)
	})

	t.Run("Unsigned token is rejected", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			UserID: 1001,
		})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, errs.ErrMalformedCredential)
	})

	t.Run("Zero user id claim", func(t *testing.T) {
		token, err := svc.Issue(0)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, errs.ErrMalformedCredential)
	})
}
