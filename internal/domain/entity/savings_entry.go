package entity

import "time"

// SavingsEntry is a mutable per-user savings goal. Index is unique within a
// user and is the stable client-facing handle; it is allocated from the
// per-user savings counter and never renumbered after deletes.
type SavingsEntry struct {
	ID     uint64
	UserID uint64
	Index  int64
	Name   string
	Amount float64
	Medium string
	Date   time.Time
}
