package repositories

import (
	"github.com/mufasadev/minibank/internal/domain/models"
	"github.com/shopspring/decimal"
	"sync"
)

// State is the process-lifetime storage shared by the repositories: a plain
// user list, a single balance scalar and an append-only transaction log.
// Lookups are linear scans. The mutex keeps the slices safe under concurrent
// handlers; it is not an API-level ordering guarantee.
type State struct {
	mu           sync.RWMutex
	users        []models.User
	balance      decimal.Decimal
	transactions []models.Transaction
}

// NewState creates storage holding the opening balance, an empty user list
// and an empty transaction log. Nothing survives process exit.
func NewState(openingBalance decimal.Decimal) *State {
	return &State{balance: openingBalance}
}
