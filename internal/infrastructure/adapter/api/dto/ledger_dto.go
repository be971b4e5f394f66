package dto

import "time"

// TransactionRequest represents the body of POST /transaction. Amounts are
// plain numbers, not required: zero is a legitimate value and a validator
// "required" tag would reject it.
type TransactionRequest struct {
	Amount         float64 `json:"amount"`
	Remark         string  `json:"remark"`
	Medium         string  `json:"medium"`
	AccountID      string  `json:"accountId"`
	SpentFromState bool    `json:"spentFromState"`
	Timestamp      string  `json:"timestamp"`
}

// TransactionResponse represents a transaction on the wire
type TransactionResponse struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"userId"`
	Amount         float64   `json:"amount"`
	Remark         string    `json:"remark"`
	Medium         string    `json:"medium"`
	AccountID      string    `json:"accountId"`
	SpentFromState bool      `json:"spentFromState"`
	Timestamp      string    `json:"timestamp"`
	Date           time.Time `json:"date"`
}

// ExpenseRequest represents the body of POST /expense
type ExpenseRequest struct {
	Amount         float64 `json:"amount"`
	Remark         string  `json:"remark"`
	SpentFromState bool    `json:"spentFromState"`
	AccountID      string  `json:"accountId"`
	Timestamp      string  `json:"timestamp"`
}

// ExpenseResponse represents an expense on the wire
type ExpenseResponse struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"userId"`
	Amount         float64   `json:"amount"`
	Remark         string    `json:"remark"`
	SpentFromState bool      `json:"spentFromState"`
	AccountID      string    `json:"accountId"`
	Timestamp      string    `json:"timestamp"`
	Date           time.Time `json:"date"`
}

// SavingsRequest represents the body of POST /savings
type SavingsRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
	Medium string  `json:"medium"`
}

// SavingsUpdateRequest represents the body of PATCH /savings. Index zero is
// never a valid entry, so "required" doubles as the lower-bound check.
type SavingsUpdateRequest struct {
	Index  int64   `json:"index" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
	Medium string  `json:"medium"`
}

// SavingsResponse represents a savings entry on the wire
type SavingsResponse struct {
	UserID uint64    `json:"userId"`
	Index  int64     `json:"index"`
	Name   string    `json:"name"`
	Amount float64   `json:"amount"`
	Medium string    `json:"medium"`
	Date   time.Time `json:"date"`
}

// AccountCreateRequest represents the body of POST /digital-account
type AccountCreateRequest struct {
	Name    string  `json:"name" binding:"required"`
	Balance float64 `json:"balance"`
	Type    string  `json:"type"`
}

// AccountUpdateRequest represents the body of PUT /digital-account/{id}.
// Nil fields are left unchanged.
type AccountUpdateRequest struct {
	Name    *string  `json:"name"`
	Balance *float64 `json:"balance"`
	Type    *string  `json:"type"`
}

// AccountResponse represents a digital account on the wire
type AccountResponse struct {
	ID        string    `json:"id"`
	UserID    uint64    `json:"userId"`
	Name      string    `json:"name"`
	Balance   float64   `json:"balance"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}
