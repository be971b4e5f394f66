package entity

import "time"

// Expense is one append-only expense row, never updated or deleted.
type Expense struct {
	ID             uint64
	UserID         uint64
	Amount         float64
	Remark         string
	SpentFromState bool
	AccountID      string
	Timestamp      string
	Date           time.Time
}
