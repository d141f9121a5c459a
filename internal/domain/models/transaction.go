package models

import (
	"github.com/shopspring/decimal"
	"time"
)

const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
)

// ValidTypes is the set of transaction types accepted on the wire.
var ValidTypes = map[string]struct{}{
	TypeDeposit:    {},
	TypeWithdrawal: {},
}

// Transaction is one append-only ledger record. ID is internal only, used to
// correlate log lines; it never appears in responses.
type Transaction struct {
	ID     string          `json:"-"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}
