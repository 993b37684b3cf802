// Package mailer delivers statement documents by email. Delivery is
// best-effort by design: a failed send returns an error for the caller to
// log and count, but never blocks or corrupts the ledger.
package mailer

import "context"

// Delivery is one outbound statement email with its PDF attachment.
type Delivery struct {
	To       []string
	Subject  string
	Body     string
	Filename string
	Document []byte
}

// Mailer defines the interface for statement delivery.
type Mailer interface {
	// Send delivers the statement. It returns an error on failure
	// rather than swallowing it; the caller decides how to report it.
	Send(ctx context.Context, d Delivery) error
}
