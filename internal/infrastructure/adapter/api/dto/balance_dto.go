package dto

import "time"

// OnlineBalanceDTO is one entry of the balance's online list
type OnlineBalanceDTO struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// BalanceRequest represents the body of POST /balance. TotalBalance is
// accepted for wire compatibility but the server recomputes it from the
// other two fields.
type BalanceRequest struct {
	TotalBalance   float64            `json:"totalBalance"`
	OfflineBalance float64            `json:"offlineBalance"`
	OnlineBalances []OnlineBalanceDTO `json:"onlineBalances"`
}

// BalanceResponse represents a balance record on the wire
type BalanceResponse struct {
	UserID         uint64             `json:"userId"`
	TotalBalance   float64            `json:"totalBalance"`
	OfflineBalance float64            `json:"offlineBalance"`
	OnlineBalances []OnlineBalanceDTO `json:"onlineBalances"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}
