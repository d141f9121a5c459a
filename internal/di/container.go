package di

import (
	"github.com/mufasadev/minibank/internal/infrastructure/api/handlers"
	"github.com/mufasadev/minibank/internal/infrastructure/storage/repositories"
	"github.com/mufasadev/minibank/internal/usecases/interactor"
	"github.com/shopspring/decimal"
)

type Container struct {
	UserHandler           *handlers.UserHandler
	LedgerHandler         *handlers.LedgerHandler
	UserInteractor        *interactor.UserInteractor
	LedgerAuditInteractor *interactor.LedgerAuditInteractor
}

// NewContainer creates a new Container instance.
func NewContainer(state *repositories.State, openingBalance decimal.Decimal) *Container {
	userRepository := repositories.NewUserRepositoryImpl(state)
	ledgerRepository := repositories.NewLedgerRepositoryImpl(state)

	userInteractor := interactor.NewUserInteractor(userRepository)
	userHandler := handlers.NewUserHandler(userInteractor)

	ledgerInteractor := interactor.NewLedgerInteractor(ledgerRepository)
	ledgerHandler := handlers.NewLedgerHandler(ledgerInteractor)

	ledgerAuditInteractor := interactor.NewLedgerAuditInteractor(ledgerRepository, openingBalance)

	return &Container{
		UserHandler:           userHandler,
		LedgerHandler:         ledgerHandler,
		UserInteractor:        userInteractor,
		LedgerAuditInteractor: ledgerAuditInteractor,
	}
}
