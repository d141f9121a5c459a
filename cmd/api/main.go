package main

import (
	"context"
	"github.com/mufasadev/minibank/internal/app"
	"github.com/mufasadev/minibank/internal/config"
	"github.com/mufasadev/minibank/internal/di"
	"github.com/mufasadev/minibank/internal/errors"
	"github.com/mufasadev/minibank/internal/infrastructure/api/routers"
	"github.com/mufasadev/minibank/internal/infrastructure/storage/repositories"
	"github.com/mufasadev/minibank/pkg/log"
	"github.com/shopspring/decimal"
)

const (
	appName = "minibank"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	opts := []log.LoggerOption{log.WithConsoleLogger()}
	if cfg.Log.File != "" {
		opts = append(opts, log.WithFileLogger(cfg.Log.File))
	}
	log.Init(appName, opts...)
	logger := log.GetLogger()

	openingBalance, err := decimal.NewFromString(cfg.Ledger.OpeningBalance)
	if err != nil {
		logger.Fatal().Err(err).Msg(errors.ErrorInvalidOpeningBalance)
	}

	state := repositories.NewState(openingBalance)
	container := di.NewContainer(state, openingBalance)

	audit := app.NewLedgerAuditProcess(container.LedgerAuditInteractor, cfg.Process)
	go audit.Run(ctx)

	router := routers.NewRouter(container)
	service := app.NewService(cfg)
	service.Run(ctx, router)
}
