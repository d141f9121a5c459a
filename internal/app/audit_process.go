package app

import (
	"context"
	"github.com/mufasadev/minibank/internal/config"
	"strconv"
	"time"
)

type AuditHandler interface {
	Execute(ctx context.Context) error
}

type LedgerAuditProcess struct {
	handler AuditHandler
	config  config.Process
}

func NewLedgerAuditProcess(h AuditHandler, cfg config.Process) *LedgerAuditProcess {
	return &LedgerAuditProcess{handler: h, config: cfg}
}

// Run drives the periodic ledger audit until the context is cancelled.
func (p *LedgerAuditProcess) Run(ctx context.Context) error {
	interval, err := strconv.Atoi(p.config.Interval)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.handler.Execute(ctx)
		}
	}
}
