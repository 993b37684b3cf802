// Package handler implements the HTTP surface: the payment form page, the
// JSON API for payments and balances, lender login, and on-demand
// statement downloads.
package handler

import (
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/thegreengroup/loanbook/internal/auth"
	"github.com/thegreengroup/loanbook/internal/service"
)

//go:embed templates/add_payment.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/add_payment.html"))

// Handler holds the services behind the HTTP routes.
type Handler struct {
	payments      *service.PaymentService
	statements    *service.StatementService
	authenticator *auth.PassphraseAuthenticator
	jwtManager    *auth.JWTManager
}

// New creates a Handler. authenticator and jwtManager may be nil when
// authentication is not configured.
func New(
	payments *service.PaymentService,
	statements *service.StatementService,
	authenticator *auth.PassphraseAuthenticator,
	jwtManager *auth.JWTManager,
) *Handler {
	return &Handler{
		payments:      payments,
		statements:    statements,
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError sends a JSON error body.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
