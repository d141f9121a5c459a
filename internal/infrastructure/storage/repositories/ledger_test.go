package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mufasadev/minibank/internal/domain/models"
	apperr "github.com/mufasadev/minibank/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransaction(txType string, amount string) *models.Transaction {
	d, _ := decimal.NewFromString(amount)
	return &models.Transaction{
		ID:     uuid.New().String(),
		Type:   txType,
		Amount: d,
		Date:   time.Now().UTC(),
	}
}

func TestAppendTransactionAndUpdateBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit moves balance and appends to the log", func(t *testing.T) {
		ledgerRepo := NewLedgerRepositoryImpl(NewState(decimal.Zero))

		row, err := ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeDeposit, "150.25"))
		require.NoError(t, err)
		assert.True(t, row.Balance.Equal(decimal.RequireFromString("150.25")))

		balance, err := ledgerRepo.GetBalance(ctx)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.RequireFromString("150.25")))

		transactions, err := ledgerRepo.ListTransactions(ctx, "")
		require.NoError(t, err)
		require.Len(t, transactions, 1)
		assert.Equal(t, models.TypeDeposit, transactions[0].Type)
	})

	t.Run("withdrawal below zero is rejected and not recorded", func(t *testing.T) {
		ledgerRepo := NewLedgerRepositoryImpl(NewState(decimal.RequireFromString("100")))

		_, err := ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeWithdrawal, "100.01"))
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.NewInsufficientFundsError()))

		balance, err := ledgerRepo.GetBalance(ctx)
		require.NoError(t, err)
		assert.True(t, balance.Equal(decimal.RequireFromString("100")))

		transactions, err := ledgerRepo.ListTransactions(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})

	t.Run("withdrawal to exactly zero succeeds", func(t *testing.T) {
		ledgerRepo := NewLedgerRepositoryImpl(NewState(decimal.RequireFromString("50")))

		row, err := ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeWithdrawal, "50"))
		require.NoError(t, err)
		assert.True(t, row.Balance.IsZero())
	})

	t.Run("concurrent", func(t *testing.T) {
		ledgerRepo := NewLedgerRepositoryImpl(NewState(decimal.Zero))

		n := 500 // movements per direction
		results := make(chan error, n*2)
		var wg sync.WaitGroup
		wg.Add(2)

		// add balance
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_, err := ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeDeposit, "1.50"))
				results <- err
			}
		}()

		// subtract balance
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				_, err := ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeWithdrawal, "2.25"))
				results <- err
			}
		}()

		wg.Wait()
		close(results)

		var errorCount int
		for err := range results {
			if err != nil {
				errorCount++
				assert.True(t, apperr.Is(err, apperr.NewInsufficientFundsError()))
			}
		}
		assert.True(t, errorCount < n*2, "Too many movements lead to a negative balance")

		// the scalar must equal what the surviving log re-derives
		balance, err := ledgerRepo.GetBalance(ctx)
		require.NoError(t, err)
		assert.False(t, balance.IsNegative(), "The final balance must be non-negative")

		totals, err := ledgerRepo.SumTransactionsByType(ctx)
		require.NoError(t, err)
		assert.True(t, balance.Equal(totals.Deposits.Sub(totals.Withdrawals)),
			"balance must equal sum(deposits) - sum(withdrawals)")
	})
}

func TestListTransactionsFilter(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := NewLedgerRepositoryImpl(NewState(decimal.RequireFromString("1000")))

	for i := 0; i < 3; i++ {
		_, err := ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeDeposit, "10"))
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeWithdrawal, "5"))
		require.NoError(t, err)
	}

	all, err := ledgerRepo.ListTransactions(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	deposits, err := ledgerRepo.ListTransactions(ctx, models.TypeDeposit)
	require.NoError(t, err)
	assert.Len(t, deposits, 3)

	withdrawals, err := ledgerRepo.ListTransactions(ctx, models.TypeWithdrawal)
	require.NoError(t, err)
	assert.Len(t, withdrawals, 2)

	// append order is preserved
	assert.Equal(t, models.TypeDeposit, all[0].Type)
	assert.Equal(t, models.TypeWithdrawal, all[4].Type)
}

func TestSumTransactionsByType(t *testing.T) {
	ctx := context.Background()
	ledgerRepo := NewLedgerRepositoryImpl(NewState(decimal.RequireFromString("100")))

	_, err := ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeDeposit, "40.10"))
	require.NoError(t, err)
	_, err = ledgerRepo.AppendTransactionAndUpdateBalance(ctx, newTransaction(models.TypeWithdrawal, "15.60"))
	require.NoError(t, err)

	totals, err := ledgerRepo.SumTransactionsByType(ctx)
	require.NoError(t, err)
	assert.True(t, totals.Deposits.Equal(decimal.RequireFromString("40.10")))
	assert.True(t, totals.Withdrawals.Equal(decimal.RequireFromString("15.60")))
}
