package loan

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/thegreengroup/loanbook/internal/models"
)

// Snapshot is the derived state of the loan as of a date. It is computed
// fresh from the ledger on every call and never stored. Values are rounded
// to cents at the point of reporting.
type Snapshot struct {
	// Principal is the remaining balance interest is computed on.
	// Overpayment can drive it negative; that is valid output.
	Principal decimal.Decimal

	// Interest is accrued, unpaid interest. Never negative.
	Interest decimal.Decimal

	// Total is Principal + Interest.
	Total decimal.Decimal
}

// StateAsOf folds the payment ledger through the accrual engine and returns
// the loan balance as of the given date.
//
// Algorithm:
//   - Start from the original principal with zero unpaid interest, cursor
//     at the loan start date.
//   - For each payment in date order (same-day payments keep ledger
//     insertion order): accrue interest from the cursor to the payment
//     date, then allocate the payment interest-first — unpaid interest is
//     cleared before a cent touches principal, and interest is clamped at
//     zero, never negative. Advance the cursor.
//   - Accrue one final stretch from the last payment to the as-of date.
//
// Unpaid interest never capitalizes into principal, so accrual alone never
// increases principal: for a fixed ledger, principal is non-increasing over
// time. The result is a pure function of (asOf, payments, terms).
func StateAsOf(asOf civil.Date, payments []models.Payment, terms models.LoanTerms) Snapshot {
	ordered := make([]models.Payment, len(payments))
	copy(ordered, payments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	principal := terms.Principal
	interest := decimal.Zero
	cursor := terms.StartDate

	for _, p := range ordered {
		interest = interest.Add(Accrue(principal, cursor, p.Date, terms.RateSchedule))
		if p.Amount.GreaterThanOrEqual(interest) {
			principal = principal.Sub(p.Amount.Sub(interest))
			interest = decimal.Zero
		} else {
			interest = interest.Sub(p.Amount)
		}
		cursor = p.Date
	}

	interest = interest.Add(Accrue(principal, cursor, asOf, terms.RateSchedule))

	return Snapshot{
		Principal: principal.Round(2),
		Interest:  interest.Round(2),
		Total:     principal.Add(interest).Round(2),
	}
}
