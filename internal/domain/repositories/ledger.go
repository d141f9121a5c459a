package repositories

import (
	"context"
	"github.com/mufasadev/minibank/internal/domain/models"
	"github.com/shopspring/decimal"
	"time"
)

type LedgerRepository interface {
	GetBalance(ctx context.Context) (decimal.Decimal, error)
	ListTransactions(ctx context.Context, txType string) ([]models.Transaction, error)
	AppendTransactionAndUpdateBalance(ctx context.Context, transaction *models.Transaction) (TransactionRow, error)
	SumTransactionsByType(ctx context.Context) (TransactionTotals, error)
}

// TransactionRow is what a successful append returns: the recorded movement
// plus the balance after it.
type TransactionRow struct {
	Balance decimal.Decimal
	Type    string
	Amount  decimal.Decimal
	Date    time.Time
}

type TransactionTotals struct {
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
}
