package entity

import (
	"context"
	"testing"
	"time"

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

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := stubClock{now: fixedTime}

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(1001, "alice", "alice@example.com", "s3cret-pass", clock)

		require.NoError(t, err)
		assert.Equal(t, uint64(1001), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Password is never stored in plain text", func(t *testing.T) {
		user, err := NewUser(1001, "alice", "alice@example.com", "s3cret-pass", clock)

		require.NoError(t, err)
		assert.NotEmpty(t, user.PasswordDigest)
		assert.NotEqual(t, "s3cret-pass", user.PasswordDigest)
		assert.NotContains(t, user.PasswordDigest, "s3cret-pass")
	})

	t.Run("Same password hashes differently per user", func(t *testing.T) {
		first, err := NewUser(1001, "alice", "alice@example.com", "shared", clock)
		require.NoError(t, err)

		second, err := NewUser(1002, "bob", "bob@example.com", "shared", clock)
		require.NoError(t, err)

		assert.NotEqual(t, first.PasswordDigest, second.PasswordDigest)
	})
}

func TestUserCheckPassword(t *testing.T) {
	clock := stubClock{now: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}

	user, err := NewUser(1001, "alice", "alice@example.com", "correct-horse", clock)
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("correct-horse"))
	assert.False(t, user.CheckPassword("wrong-horse"))
	assert.False(t, user.CheckPassword(""))
}
