package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// pageData feeds the add-payment template.
type pageData struct {
	PropertyAddress string
	BorrowerName    string
	AsOf            string
	Principal       string
	Interest        string
	Total           string
	Payments        []paymentJSON
	Error           string
}

// FormPage handles GET /: current balances, payment history, and the
// submission form.
func (h *Handler) FormPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, "")
}

// SubmitPayment handles the browser form POST /add-payment and redirects
// back to the page, mirroring a classic post/redirect/get flow.
func (h *Handler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, "could not parse form")
		return
	}

	amount, err := decimal.NewFromString(r.PostFormValue("amount"))
	if err != nil {
		h.renderForm(w, r, "amount must be a decimal number")
		return
	}
	date, err := civil.ParseDate(r.PostFormValue("date"))
	if err != nil {
		h.renderForm(w, r, "date must be YYYY-MM-DD")
		return
	}

	if _, err := h.payments.RecordPayment(r.Context(), amount, date); err != nil {
		h.renderForm(w, r, err.Error())
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, formErr string) {
	asOf := civil.DateOf(time.Now())
	snap, err := h.payments.BalanceAsOf(r.Context(), asOf)
	if err != nil {
		slog.Error("BalanceAsOf failed", "error", err)
		http.Error(w, "failed to compute balance", http.StatusInternalServerError)
		return
	}
	payments, err := h.payments.ListPayments(r.Context())
	if err != nil {
		slog.Error("ListPayments failed", "error", err)
		http.Error(w, "failed to read ledger", http.StatusInternalServerError)
		return
	}

	terms := h.payments.Terms()
	data := pageData{
		PropertyAddress: terms.PropertyAddress,
		BorrowerName:    terms.BorrowerName,
		AsOf:            asOf.String(),
		Principal:       snap.Principal.StringFixed(2),
		Interest:        snap.Interest.StringFixed(2),
		Total:           snap.Total.StringFixed(2),
		Error:           formErr,
	}
	for _, p := range payments {
		data.Payments = append(data.Payments, toPaymentJSON(p))
	}

	status := http.StatusOK
	if formErr != "" {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("Failed to render page", "error", err)
	}
}
