// Package statement renders monthly loan statements. The renderer is a
// pure function from a balance snapshot and payment history to text lines;
// a separate encoder turns lines into a PDF document.
package statement

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/thegreengroup/loanbook/internal/loan"
	"github.com/thegreengroup/loanbook/internal/models"
)

// Data is everything a statement shows. The caller computes the snapshot;
// the renderer only formats.
type Data struct {
	BorrowerName      string
	PropertyAddress   string
	OriginalPrincipal decimal.Decimal
	StatementDate     civil.Date
	Balance           loan.Snapshot
	Payments          []models.Payment
}

// Render produces the statement's text lines in display order.
func Render(d Data) []string {
	lines := []string{
		fmt.Sprintf("Loan Statement - %s", d.PropertyAddress),
		fmt.Sprintf("Statement Date: %s", d.StatementDate),
		fmt.Sprintf("Borrower: %s", d.BorrowerName),
		fmt.Sprintf("Original Principal: %s", formatUSD(d.OriginalPrincipal)),
		fmt.Sprintf("Principal Balance: %s", formatUSD(d.Balance.Principal)),
		fmt.Sprintf("Accrued Interest: %s", formatUSD(d.Balance.Interest)),
		fmt.Sprintf("Current Balance: %s", formatUSD(d.Balance.Total)),
		"",
		"Payments:",
	}
	if len(d.Payments) == 0 {
		lines = append(lines, "(none)")
		return lines
	}
	for _, p := range d.Payments {
		lines = append(lines, fmt.Sprintf("%s - %s", p.Date, formatUSD(p.Amount)))
	}
	return lines
}

// Filename returns the statement artifact name for an as-of date,
// e.g. "statement_2020-11-01.pdf".
func Filename(asOf civil.Date) string {
	return fmt.Sprintf("statement_%s.pdf", asOf)
}

// formatUSD renders a decimal as dollars with thousands separators,
// e.g. "$120,000.00" or "-$3,450.00".
func formatUSD(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	if v.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}
