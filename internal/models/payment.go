package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Payment is one entry in the append-only payment ledger.
// Payments are immutable once written: never updated, never deleted.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// Amount is the payment amount in loan currency. Always >= 0;
	// negative amounts are rejected at the ledger boundary.
	Amount decimal.Decimal

	// Date is the calendar date the payment applies to. May differ from
	// the date it was recorded.
	Date civil.Date

	// Seq is the ledger insertion sequence, assigned by storage.
	// Payments sharing a Date are applied in Seq order.
	Seq int64

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64
}
