package repositories

import (
	"context"
	"github.com/mufasadev/minibank/internal/domain/models"
	"github.com/mufasadev/minibank/internal/domain/repositories"
	"github.com/mufasadev/minibank/internal/errors"
	"github.com/shopspring/decimal"
)

type LedgerRepositoryImpl struct {
	state *State
}

func NewLedgerRepositoryImpl(state *State) repositories.LedgerRepository {
	return &LedgerRepositoryImpl{
		state: state,
	}
}

func (r *LedgerRepositoryImpl) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	return r.state.balance, nil
}

// ListTransactions returns the full log, or only the records matching txType
// when it is non-empty.
func (r *LedgerRepositoryImpl) ListTransactions(ctx context.Context, txType string) ([]models.Transaction, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	out := make([]models.Transaction, 0, len(r.state.transactions))
	for _, transaction := range r.state.transactions {
		if txType != "" && transaction.Type != txType {
			continue
		}
		out = append(out, transaction)
	}
	return out, nil
}

// AppendTransactionAndUpdateBalance applies the movement and appends the
// record under one lock so the scalar and the log move together. A
// withdrawal that would take the balance below zero is rejected and nothing
// is recorded.
func (r *LedgerRepositoryImpl) AppendTransactionAndUpdateBalance(ctx context.Context, transaction *models.Transaction) (repositories.TransactionRow, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()

	change := transaction.Amount
	if transaction.Type == models.TypeWithdrawal {
		change = change.Neg()
	}

	next := r.state.balance.Add(change)
	if next.IsNegative() {
		return repositories.TransactionRow{}, errors.NewInsufficientFundsError()
	}

	r.state.balance = next
	r.state.transactions = append(r.state.transactions, *transaction)

	return repositories.TransactionRow{
		Balance: next,
		Type:    transaction.Type,
		Amount:  transaction.Amount,
		Date:    transaction.Date,
	}, nil
}

func (r *LedgerRepositoryImpl) SumTransactionsByType(ctx context.Context) (repositories.TransactionTotals, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()

	totals := repositories.TransactionTotals{}
	for _, transaction := range r.state.transactions {
		switch transaction.Type {
		case models.TypeDeposit:
			totals.Deposits = totals.Deposits.Add(transaction.Amount)
		case models.TypeWithdrawal:
			totals.Withdrawals = totals.Withdrawals.Add(transaction.Amount)
		}
	}
	return totals, nil
}
