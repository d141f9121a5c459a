package handlers

import (
	"context"
	"encoding/json"
	"github.com/mufasadev/minibank/internal/domain/models"
	"github.com/mufasadev/minibank/internal/errors"
	http2 "github.com/mufasadev/minibank/internal/infrastructure/api/http"
	"github.com/mufasadev/minibank/internal/usecases/dtos"
	"github.com/mufasadev/minibank/internal/usecases/interactor"
	"github.com/mufasadev/minibank/pkg/log"
	"github.com/rs/zerolog"
	"net/http"
	"time"
)

type LedgerHandler struct {
	interactor *interactor.LedgerInteractor
	logger     *zerolog.Logger
}

func NewLedgerHandler(interactor *interactor.LedgerInteractor) *LedgerHandler {
	logger := log.GetLogger()
	return &LedgerHandler{interactor: interactor, logger: &logger}
}

func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	balance, err := h.interactor.GetBalance(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to get balance")
		errors.HandleHTTPError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(struct {
		Balance float64 `json:"balance"`
	}{Balance: balance})
}

func (h *LedgerHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.processTransaction(w, r, models.TypeDeposit)
}

func (h *LedgerHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.processTransaction(w, r, models.TypeWithdrawal)
}

func (h *LedgerHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	txType := r.URL.Query().Get(http2.TypeQueryParam)
	transactions, err := h.interactor.ListTransactions(ctx, txType)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list transactions")
		errors.HandleHTTPError(w, err)
		return
	}

	out := make([]dtos.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		amount, _ := transaction.Amount.Float64()
		out = append(out, dtos.TransactionResponse{
			Type:   transaction.Type,
			Amount: amount,
			Date:   transaction.Date,
		})
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(out)
}

func (h *LedgerHandler) processTransaction(w http.ResponseWriter, r *http.Request, txType string) {
	var dto dtos.TransactionDTO
	err := json.NewDecoder(r.Body).Decode(&dto)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedDecodeRequestBody)
		errors.HandleHTTPError(w, errors.NewBadRequestError(errors.ErrInvalidRequestBody))
		return
	}

	var amount interface{}
	if dto.RawAmount != nil {
		err = json.Unmarshal(dto.RawAmount, &amount)
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to unmarshal raw amount")
		errors.HandleHTTPError(w, errors.NewBadRequestError("Invalid amount"))
		return
	}
	// amount must be a JSON number; the raw digits are kept so the decimal
	// parse sees the exact wire text
	if _, ok := amount.(float64); !ok {
		h.logger.Error().Msg("amount is not a number")
		errors.HandleHTTPError(w, errors.NewBadRequestError("Invalid amount"))
		return
	}
	dto.Amount = string(dto.RawAmount)

	row, err := h.interactor.ProcessTransaction(txType, &dto)
	if err != nil {
		h.logger.Error().Err(err).Msg(errors.ErrFailedProcessTransaction)
		errors.HandleHTTPError(w, err)
		return
	}

	balance, _ := row.Balance.Float64()
	recorded, _ := row.Amount.Float64()
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dtos.BalanceMovementResponse{
		Balance: balance,
		Transaction: dtos.TransactionResponse{
			Type:   row.Type,
			Amount: recorded,
			Date:   row.Date,
		},
	})
}
