package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thegreengroup/loanbook/internal/models"
)

// Ensure MemoryLedger implements Ledger
var _ Ledger = (*MemoryLedger)(nil)

// MemoryLedger is an in-memory Ledger for tests and local development.
type MemoryLedger struct {
	mu       sync.Mutex
	payments []models.Payment
	nextSeq  int64
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// AppendPayment records a payment, assigning ID, Seq, and CreatedAt.
func (m *MemoryLedger) AppendPayment(_ context.Context, payment *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}
	m.nextSeq++
	payment.Seq = m.nextSeq

	m.payments = append(m.payments, *payment)
	return nil
}

// ListPayments returns payments by date ascending, insertion order on ties.
func (m *MemoryLedger) ListPayments(_ context.Context) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Payment, len(m.payments))
	copy(out, m.payments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// Close is a no-op.
func (m *MemoryLedger) Close() error {
	return nil
}
