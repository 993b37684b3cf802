// Package service wires the ledger, the balance engine, the statement
// renderer, and the mailer together behind the HTTP and scheduler surfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/thegreengroup/loanbook/internal/loan"
	"github.com/thegreengroup/loanbook/internal/models"
	"github.com/thegreengroup/loanbook/internal/storage"
)

var (
	ErrNegativeAmount  = errors.New("payment amount must not be negative")
	ErrInvalidDate     = errors.New("payment date is not a valid date")
	ErrBeforeLoanStart = errors.New("payment date precedes the loan start date")
)

var paymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "loanbook_payments_recorded_total",
	Help: "Payments appended to the ledger.",
})

// PaymentService is the ledger boundary: it validates submissions, appends
// them, and answers balance queries. The balance engine itself assumes
// validated input and never re-checks.
type PaymentService struct {
	ledger storage.Ledger
	terms  models.LoanTerms
}

// NewPaymentService creates a PaymentService over the given ledger and terms.
func NewPaymentService(ledger storage.Ledger, terms models.LoanTerms) *PaymentService {
	return &PaymentService{ledger: ledger, terms: terms}
}

// RecordPayment validates and appends a payment, returning the stored record.
func (s *PaymentService) RecordPayment(ctx context.Context, amount decimal.Decimal, date civil.Date) (*models.Payment, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if !date.IsValid() {
		return nil, ErrInvalidDate
	}
	if date.Before(s.terms.StartDate) {
		return nil, ErrBeforeLoanStart
	}

	payment := &models.Payment{Amount: amount, Date: date}
	if err := s.ledger.AppendPayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	paymentsRecorded.Inc()
	slog.Info("Payment recorded",
		"payment_id", payment.ID,
		"amount", payment.Amount,
		"date", payment.Date,
	)
	return payment, nil
}

// ListPayments returns the full ledger in date order.
func (s *PaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return s.ledger.ListPayments(ctx)
}

// BalanceAsOf reads the ledger and computes the loan balance as of the
// given date.
func (s *PaymentService) BalanceAsOf(ctx context.Context, asOf civil.Date) (loan.Snapshot, error) {
	payments, err := s.ledger.ListPayments(ctx)
	if err != nil {
		return loan.Snapshot{}, fmt.Errorf("failed to read ledger: %w", err)
	}
	return loan.StateAsOf(asOf, payments, s.terms), nil
}

// Terms exposes the loan terms for rendering.
func (s *PaymentService) Terms() models.LoanTerms {
	return s.terms
}
