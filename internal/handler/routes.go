package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thegreengroup/loanbook/internal/middleware"
)

// Routes builds the full HTTP mux: form page, JSON API, statement
// download, health, and metrics. Mutating API routes are wrapped with
// RequireAuth; with a nil jwtManager the wrapper is a pass-through.
func (h *Handler) Routes() http.Handler {
	requireAuth := middleware.RequireAuth(h.jwtManager)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.FormPage)
	mux.HandleFunc("POST /add-payment", h.SubmitPayment)

	mux.HandleFunc("POST /api/login", h.Login)
	mux.Handle("POST /api/payments", requireAuth(http.HandlerFunc(h.CreatePayment)))
	mux.HandleFunc("GET /api/payments", h.ListPayments)
	mux.HandleFunc("GET /api/balance", h.GetBalance)
	mux.HandleFunc("GET /statement.pdf", h.DownloadStatement)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Logging(middleware.Metrics(mux))
}
