// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/thegreengroup/loanbook/internal/models"
)

// Ledger defines the interface for the append-only payment ledger.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// The ledger is append-only: payments are never updated or deleted. The
// balance engine depends only on this read/append contract.
type Ledger interface {
	// AppendPayment durably records a new payment as a single atomic
	// write. The payment's ID, Seq, and CreatedAt fields are populated
	// by the store.
	AppendPayment(ctx context.Context, payment *models.Payment) error

	// ListPayments returns every payment sorted ascending by date;
	// payments on the same date come back in insertion order.
	ListPayments(ctx context.Context) ([]models.Payment, error)

	// Close releases any resources held by the store.
	Close() error
}
