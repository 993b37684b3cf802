// Package models defines the core domain records for Loanbook.
//
// The system tracks exactly one loan. Its terms (principal, start date,
// rate schedule, borrower and lender identity) are read-only configuration
// loaded at startup; the only data written at runtime is the append-only
// ledger of Payment records. Balances are never stored — they are derived
// from the ledger on demand by the loan package.
package models
