package routers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mufasadev/minibank/internal/di"
	"github.com/mufasadev/minibank/internal/infrastructure/storage/repositories"
	"github.com/mufasadev/minibank/pkg/log"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Init("minibank-test", log.WithLogLevel(int(zerolog.Disabled)))
	m.Run()
}

type userResp struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type transactionResp struct {
	Type   string    `json:"type"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

type movementResp struct {
	Balance     float64         `json:"balance"`
	Transaction transactionResp `json:"transaction"`
}

type errResp struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func setup(t *testing.T, openingBalance string) http.Handler {
	t.Helper()
	state := repositories.NewState(decimal.RequireFromString(openingBalance))
	container := di.NewContainer(state, decimal.RequireFromString(openingBalance))
	return NewRouter(container)
}

func doRequest(t *testing.T, router http.Handler, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUserCRUD(t *testing.T) {
	router := setup(t, "0")

	t.Run("list starts empty", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/users", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("create", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/users", map[string]interface{}{"name": "Alice"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var user userResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, 1, user.ID)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("create rejects non-string name", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/users", map[string]interface{}{"name": 42})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/users/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var user userResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("get unknown user", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/users/99", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var e errResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		assert.Equal(t, http.StatusNotFound, e.Code)
	})

	t.Run("get non-integer id", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/users/abc", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPut, "/api/v1/users/1", map[string]interface{}{"name": "Alicia"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var user userResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Alicia", user.Name)
	})

	t.Run("delete", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodDelete, "/api/v1/users/1", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doRequest(t, router, http.MethodGet, "/api/v1/users/1", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAccountEndpoints(t *testing.T) {
	router := setup(t, "0")

	t.Run("balance starts at opening balance", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/account/balance", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"balance":0}`, rec.Body.String())
	})

	t.Run("deposit", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/account/deposit", map[string]interface{}{"amount": 100.5})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var movement movementResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movement))
		assert.Equal(t, 100.5, movement.Balance)
		assert.Equal(t, "deposit", movement.Transaction.Type)
		assert.Equal(t, 100.5, movement.Transaction.Amount)
		assert.False(t, movement.Transaction.Date.IsZero())
	})

	t.Run("withdraw", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/account/withdraw", map[string]interface{}{"amount": 40.25})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var movement movementResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movement))
		assert.Equal(t, 60.25, movement.Balance)
		assert.Equal(t, "withdrawal", movement.Transaction.Type)
	})

	t.Run("withdraw past the balance", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/account/withdraw", map[string]interface{}{"amount": 1000})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var e errResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		assert.Equal(t, "insufficient funds", e.Message)

		// balance unchanged
		rec = doRequest(t, router, http.MethodGet, "/api/v1/account/balance", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"balance":60.25}`, rec.Body.String())
	})

	t.Run("amount must be a number", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/api/v1/account/deposit", map[string]interface{}{"amount": "100"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doRequest(t, router, http.MethodPost, "/api/v1/account/deposit", map[string]interface{}{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("transactions log", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/account/transactions", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var transactions []transactionResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transactions))
		require.Len(t, transactions, 2)
		assert.Equal(t, "deposit", transactions[0].Type)
		assert.Equal(t, "withdrawal", transactions[1].Type)
	})

	t.Run("transactions filter", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/v1/account/transactions?type=deposit", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var transactions []transactionResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &transactions))
		require.Len(t, transactions, 1)
		assert.Equal(t, "deposit", transactions[0].Type)

		rec = doRequest(t, router, http.MethodGet, "/api/v1/account/transactions?type=refund", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuxEndpoints(t *testing.T) {
	router := setup(t, "0")

	rec := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
