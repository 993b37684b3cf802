package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/thegreengroup/loanbook/internal/models"
	"github.com/thegreengroup/loanbook/internal/service"
	"github.com/thegreengroup/loanbook/internal/statement"
)

// paymentJSON is the wire shape of a ledger entry. Amounts travel as
// strings so no precision is lost in transit.
type paymentJSON struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Seq       int64  `json:"seq"`
	CreatedAt int64  `json:"created_at"`
}

func toPaymentJSON(p models.Payment) paymentJSON {
	return paymentJSON{
		ID:        p.ID,
		Amount:    p.Amount.StringFixed(2),
		Date:      p.Date.String(),
		Seq:       p.Seq,
		CreatedAt: p.CreatedAt,
	}
}

type balanceJSON struct {
	AsOf      string `json:"as_of"`
	Principal string `json:"principal"`
	Interest  string `json:"interest"`
	Total     string `json:"total"`
}

// asOfParam parses the optional as_of query parameter, defaulting to today.
func asOfParam(r *http.Request) (civil.Date, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return civil.DateOf(time.Now()), nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, fmt.Errorf("as_of must be YYYY-MM-DD: %w", err)
	}
	return d, nil
}

// recordPaymentError maps validation failures to 400 and everything else to 500.
func recordPaymentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNegativeAmount),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrBeforeLoanStart):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("RecordPayment failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to record payment")
	}
}

// CreatePayment handles POST /api/payments.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount string `json:"amount"`
		Date   string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "amount must be a decimal number")
		return
	}
	date, err := civil.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	payment, err := h.payments.RecordPayment(r.Context(), amount, date)
	if err != nil {
		recordPaymentError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentJSON(*payment))
}

// ListPayments handles GET /api/payments.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPayments(r.Context())
	if err != nil {
		slog.Error("ListPayments failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read ledger")
		return
	}

	out := make([]paymentJSON, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentJSON(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetBalance handles GET /api/balance?as_of=YYYY-MM-DD.
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.payments.BalanceAsOf(r.Context(), asOf)
	if err != nil {
		slog.Error("BalanceAsOf failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to compute balance")
		return
	}

	writeJSON(w, http.StatusOK, balanceJSON{
		AsOf:      asOf.String(),
		Principal: snap.Principal.StringFixed(2),
		Interest:  snap.Interest.StringFixed(2),
		Total:     snap.Total.StringFixed(2),
	})
}

// DownloadStatement handles GET /statement.pdf?as_of=YYYY-MM-DD.
func (h *Handler) DownloadStatement(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.statements.Generate(r.Context(), asOf)
	if err != nil {
		slog.Error("Statement generation failed", "as_of", asOf, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate statement")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", statement.Filename(asOf)))
	w.Write(doc)
}
