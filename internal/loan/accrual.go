package loan

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/thegreengroup/loanbook/internal/models"
)

// daysPerYear is the day-count divisor. Leap years are not special-cased;
// the divisor is always 365, a known and accepted approximation.
var daysPerYear = decimal.NewFromInt(365)

// Accrue computes simple interest owed on a constant balance from `from`
// (inclusive) to `to` (exclusive) under the rate schedule, using an
// actual-days/365 day count.
//
// The span is walked in calendar-month steps because the rate can change
// between months. Each step reads the rate once, at the step's start date;
// rate changes are calendar-month aligned in this system, so a change never
// falls strictly inside a step.
//
// A span where from >= to accrues nothing. The result is unrounded —
// rounding to cents happens only when a snapshot is reported.
func Accrue(balance decimal.Decimal, from, to civil.Date, schedule []models.RateEntry) decimal.Decimal {
	accrued := decimal.Zero
	current := from
	for current.Before(to) {
		periodEnd := firstOfNextMonth(current)
		if to.Before(periodEnd) {
			periodEnd = to
		}
		rate := RateAt(schedule, current)
		days := decimal.NewFromInt(int64(periodEnd.DaysSince(current)))
		accrued = accrued.Add(balance.Mul(rate).Div(daysPerYear).Mul(days))
		current = periodEnd
	}
	return accrued
}

func firstOfNextMonth(d civil.Date) civil.Date {
	if d.Month == time.December {
		return civil.Date{Year: d.Year + 1, Month: time.January, Day: 1}
	}
	return civil.Date{Year: d.Year, Month: d.Month + 1, Day: 1}
}
