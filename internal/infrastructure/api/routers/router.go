package routers

import (
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mufasadev/minibank/internal/di"
	http2 "github.com/mufasadev/minibank/internal/infrastructure/api/http"
	"github.com/mufasadev/minibank/internal/infrastructure/api/middlewares"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

func NewRouter(container *di.Container) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.MetricsMiddleware)

	router.Get("/health", healthHandler)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Set up v1 routes with a path prefix
	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			uh := container.UserHandler
			r.Get("/", uh.ListUsers)
			r.Post("/", uh.CreateUser)
			r.Route(fmt.Sprintf("/{%s}", http2.UserIDParam), func(r chi.Router) {
				r.Use(middlewares.UserValidationMiddleware(container.UserInteractor))
				r.Get("/", uh.GetUser)
				r.Put("/", uh.UpdateUser)
				r.Delete("/", uh.DeleteUser)
			})
		})
		r.Route("/account", func(r chi.Router) {
			lh := container.LedgerHandler
			r.Get("/balance", lh.GetBalance)
			r.Post("/deposit", lh.Deposit)
			r.Post("/withdraw", lh.Withdraw)
			r.Get("/transactions", lh.ListTransactions)
		})
	})

	return router
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(struct {
		Status string `json:"status"`
	}{Status: "ok"})
}
