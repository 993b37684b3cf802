package sqlite

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/thegreengroup/loanbook/internal/models"
)

// AppendPayment persists a new payment to the ledger.
func (s *SQLiteLedger) AppendPayment(ctx context.Context, payment *models.Payment) error {
	// Generate ID and timestamp if not set
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO payments (id, amount, date, created_at) VALUES (?, ?, ?, ?)",
		payment.ID, payment.Amount.String(), payment.Date.String(), payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read payment seq: %w", err)
	}
	payment.Seq = seq

	return nil
}

// ListPayments retrieves the full ledger, sorted by date ascending with
// insertion order breaking ties.
func (s *SQLiteLedger) ListPayments(ctx context.Context) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT seq, id, amount, date, created_at FROM payments ORDER BY date, seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var (
			p       models.Payment
			amount  string
			dateStr string
		)
		if err := rows.Scan(&p.Seq, &p.ID, &amount, &dateStr, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		p.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("payment %s has bad amount %q: %w", p.ID, amount, err)
		}
		p.Date, err = civil.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("payment %s has bad date %q: %w", p.ID, dateStr, err)
		}

		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
