package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/thegreengroup/loanbook/internal/mailer"
	"github.com/thegreengroup/loanbook/internal/statement"
)

var (
	statementsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loanbook_statements_sent_total",
		Help: "Statement emails delivered.",
	})
	statementDeliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loanbook_statement_delivery_failures_total",
		Help: "Statement emails that failed to deliver.",
	})
)

// StatementService builds the periodic loan statement and hands it to the
// mailer. It holds no state of its own, so generating a statement for the
// same as-of date twice produces the same document.
type StatementService struct {
	payments *PaymentService
	mailer   mailer.Mailer
}

// NewStatementService creates a StatementService.
func NewStatementService(payments *PaymentService, m mailer.Mailer) *StatementService {
	return &StatementService{payments: payments, mailer: m}
}

// Generate renders the statement PDF as of the given date.
func (s *StatementService) Generate(ctx context.Context, asOf civil.Date) ([]byte, error) {
	balance, err := s.payments.BalanceAsOf(ctx, asOf)
	if err != nil {
		return nil, err
	}
	history, err := s.payments.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	terms := s.payments.Terms()
	lines := statement.Render(statement.Data{
		BorrowerName:      terms.BorrowerName,
		PropertyAddress:   terms.PropertyAddress,
		OriginalPrincipal: terms.Principal,
		StatementDate:     asOf,
		Balance:           balance,
		Payments:          history,
	})
	return statement.EncodePDF(lines)
}

// GenerateAndSend generates the statement for the as-of date and emails it
// to the borrower and lender. Generation failures propagate; delivery
// failures are logged and counted, because statement delivery is
// best-effort and must not disturb the ledger or the schedule.
func (s *StatementService) GenerateAndSend(ctx context.Context, asOf civil.Date) error {
	doc, err := s.Generate(ctx, asOf)
	if err != nil {
		return fmt.Errorf("failed to generate statement: %w", err)
	}

	terms := s.payments.Terms()
	delivery := mailer.Delivery{
		To:       []string{terms.LenderEmail, terms.BorrowerEmail},
		Subject:  fmt.Sprintf("Loan Statement – %s – %s", terms.PropertyAddress, asOf.In(time.UTC).Format("January 2006")),
		Body:     "Attached is your loan statement for the month.",
		Filename: statement.Filename(asOf),
		Document: doc,
	}

	if err := s.mailer.Send(ctx, delivery); err != nil {
		statementDeliveryFailures.Inc()
		slog.Error("Statement delivery failed", "as_of", asOf, "error", err)
		return nil
	}

	statementsSent.Inc()
	slog.Info("Statement sent", "as_of", asOf, "attachment", delivery.Filename, "bytes", len(doc))
	return nil
}
