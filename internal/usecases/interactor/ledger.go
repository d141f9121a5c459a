package interactor

import (
	"context"
	"github.com/google/uuid"
	"github.com/mufasadev/minibank/internal/domain/models"
	"github.com/mufasadev/minibank/internal/domain/repositories"
	apperrors "github.com/mufasadev/minibank/internal/errors"
	"github.com/mufasadev/minibank/internal/usecases/dtos"
	"github.com/mufasadev/minibank/pkg/log"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"time"
)

type LedgerInteractor struct {
	ledgerRepository repositories.LedgerRepository
	logger           *zerolog.Logger
}

func NewLedgerInteractor(ledgerRepository repositories.LedgerRepository) *LedgerInteractor {
	l := log.GetLogger()
	return &LedgerInteractor{
		ledgerRepository: ledgerRepository,
		logger:           &l,
	}
}

// ProcessTransaction records one deposit or withdrawal against the single
// implicit account. The only checks are the spec's type checks: the
// transaction type must be known and the amount must parse as a number.
func (i *LedgerInteractor) ProcessTransaction(txType string, dto *dtos.TransactionDTO) (*repositories.TransactionRow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, ok := models.ValidTypes[txType]; !ok {
		i.logger.Error().Str("type", txType).Msg("Invalid transaction type")
		return nil, apperrors.NewBadRequestError("Invalid transaction type")
	}

	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		i.logger.Error().Err(err).Msg("Failed to parse amount")
		return nil, apperrors.NewBadRequestError("Invalid amount")
	}

	transaction := &models.Transaction{
		ID:     uuid.New().String(),
		Type:   txType,
		Amount: amount.Abs().Round(2),
		Date:   time.Now().UTC(),
	}

	row, err := i.ledgerRepository.AppendTransactionAndUpdateBalance(ctx, transaction)
	if err != nil {
		return nil, err
	}

	i.logger.Info().
		Str("transaction_id", transaction.ID).
		Str("type", row.Type).
		Str("amount", row.Amount.String()).
		Str("balance", row.Balance.String()).
		Msg("Transaction processed")

	return &row, nil
}

func (i *LedgerInteractor) GetBalance(ctx context.Context) (float64, error) {
	balance, err := i.ledgerRepository.GetBalance(ctx)
	if err != nil {
		return 0.0, err
	}
	b, _ := balance.Float64()
	return b, nil
}

// ListTransactions returns the log, optionally filtered by type. An unknown
// filter value is rejected the same way an unknown transaction type is.
func (i *LedgerInteractor) ListTransactions(ctx context.Context, txType string) ([]models.Transaction, error) {
	if txType != "" {
		if _, ok := models.ValidTypes[txType]; !ok {
			return nil, apperrors.NewBadRequestError("Invalid transaction type")
		}
	}
	return i.ledgerRepository.ListTransactions(ctx, txType)
}
