package entity

import "time"

// DigitalAccount is a user-managed account record. AccountID is the
// externally visible identifier minted at creation, distinct from the
// store's own row identity.
type DigitalAccount struct {
	ID        uint64
	UserID    uint64
	AccountID string
	Name      string
	Balance   float64
	Type      string
	CreatedAt time.Time
}
