package entity

import "time"

// Transaction is one append-only ledger row. Timestamp is the
// client-supplied display timestamp; Date is the server-side creation time
// used for ordering.
type Transaction struct {
	ID             uint64
	UserID         uint64
	Amount         float64
	Remark         string
	Medium         string
	AccountID      string
	SpentFromState bool
	Timestamp      string
	Date           time.Time
}
