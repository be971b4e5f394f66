package model

import (
	"time"
)

// User represents the database model for registered accounts. The ID is
// allocated from the user id counter, never by the database.
type User struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement:false"`
	Username       string    `gorm:"uniqueIndex;not null;size:255"`
	Email          string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordDigest string    `gorm:"not null;size:255"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
