package interactor

import (
	"context"
	"github.com/mufasadev/minibank/internal/domain/repositories"
	apperrors "github.com/mufasadev/minibank/internal/errors"
	"github.com/mufasadev/minibank/pkg/log"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"sync"
	"time"
)

type LedgerAuditInteractor struct {
	ledgerRepository repositories.LedgerRepository
	openingBalance   decimal.Decimal
	logger           *zerolog.Logger
	sync.Mutex
	counter int
}

// NewLedgerAuditInteractor creates a new LedgerAuditInteractor
func NewLedgerAuditInteractor(ledgerRepository repositories.LedgerRepository, openingBalance decimal.Decimal) *LedgerAuditInteractor {
	l := log.GetLogger()
	return &LedgerAuditInteractor{
		ledgerRepository: ledgerRepository,
		openingBalance:   openingBalance,
		logger:           &l,
	}
}

// Execute re-derives the balance from the transaction log and compares it to
// the stored scalar. Drift is only logged; the audit never repairs state.
func (a *LedgerAuditInteractor) Execute(ctx context.Context) error {
	a.Lock()
	defer a.Unlock()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	totals, err := a.ledgerRepository.SumTransactionsByType(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg(apperrors.ErrFailedAuditLedger)
		return err
	}

	balance, err := a.ledgerRepository.GetBalance(ctx)
	if err != nil {
		a.logger.Error().Err(err).Msg(apperrors.ErrFailedAuditLedger)
		return err
	}

	derived := a.openingBalance.Add(totals.Deposits).Sub(totals.Withdrawals)
	a.counter++

	if !derived.Equal(balance) {
		a.logger.Warn().
			Str("balance", balance.String()).
			Str("derived", derived.String()).
			Str("deposits", totals.Deposits.String()).
			Str("withdrawals", totals.Withdrawals.String()).
			Int("iteration", a.counter).
			Msg("Ledger balance drifted from transaction log")
		return nil
	}

	a.logger.Debug().
		Str("balance", balance.String()).
		Int("iteration", a.counter).
		Msg("Ledger audit passed")

	return nil
}
