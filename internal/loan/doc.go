// Package loan implements the accrual and balance engine for the tracked
// loan: a rate-schedule lookup, simple-interest accrual between two dates,
// and an interest-first fold of the payment ledger into a point-in-time
// balance snapshot.
//
// Everything here is a pure function of its arguments. The engine performs
// no I/O, holds no state, and never reads the clock — callers pass the
// as-of date explicitly, so a statement can be computed for any date, not
// just "today".
package loan
