package entity

import (
	"time"

	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account. The ID is allocated once at
// registration from the user id sequence and is immutable afterwards.
type User struct {
	ID             uint64
	Username       string
	Email          string
	PasswordDigest string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUser creates a user with a freshly hashed password digest.
func NewUser(id uint64, username, email, plainPassword string, timeProvider coreport.TimeProvider) (*User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:             id,
		Username:       username,
		Email:          email,
		PasswordDigest: string(digest),
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// CheckPassword verifies a plain password against the stored digest.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordDigest), []byte(plain)) == nil
}
