package models

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// RateEntry is one step of the loan's rate schedule: the annual rate in
// effect from EffectiveDate until the next entry's EffectiveDate.
type RateEntry struct {
	EffectiveDate civil.Date
	// AnnualRate is a fraction in [0, 1), e.g. 0.10 for 10% per annum.
	AnnualRate decimal.Decimal
}

// LoanTerms is the fixed configuration of the single tracked loan.
// It is validated once at load time and read-only afterwards.
type LoanTerms struct {
	// Principal is the original loan amount.
	Principal decimal.Decimal

	// StartDate is the date interest begins to accrue.
	StartDate civil.Date

	// RateSchedule is sorted ascending by effective date. The first
	// entry's effective date is never after StartDate.
	RateSchedule []RateEntry

	// Borrower and property identity, used on statements and email.
	BorrowerName    string
	PropertyAddress string
	BorrowerEmail   string
	LenderEmail     string
}
