package dtos

import (
	"encoding/json"
	"time"
)

// TransactionDTO keeps the raw amount so the handler can check the JSON type
// (a number is required) and the interactor can parse the exact digits.
type TransactionDTO struct {
	Amount    string          `json:"-"`
	RawAmount json.RawMessage `json:"amount"`
}

// TransactionResponse is the wire shape of a ledger record: amount as a JSON
// number, date as RFC 3339.
type TransactionResponse struct {
	Type   string    `json:"type"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// BalanceMovementResponse is returned by deposit and withdraw.
type BalanceMovementResponse struct {
	Balance     float64             `json:"balance"`
	Transaction TransactionResponse `json:"transaction"`
}
