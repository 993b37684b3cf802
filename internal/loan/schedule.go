package loan

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/thegreengroup/loanbook/internal/models"
)

// RateAt returns the annual rate in effect on the given date: the rate of
// the latest schedule entry whose effective date is on or before it. Dates
// before the first entry get the first entry's rate.
//
// The schedule is never empty and always sorted — both are enforced when
// configuration is loaded, so lookups cannot fail.
func RateAt(schedule []models.RateEntry, date civil.Date) decimal.Decimal {
	current := schedule[0].AnnualRate
	for _, entry := range schedule {
		if entry.EffectiveDate.After(date) {
			break
		}
		current = entry.AnnualRate
	}
	return current
}
