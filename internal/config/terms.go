package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/thegreengroup/loanbook/internal/models"
)

var (
	ErrEmptySchedule    = errors.New("rate schedule must have at least one entry")
	ErrUnsortedSchedule = errors.New("rate schedule must be sorted ascending by effective date")
)

// termsFile mirrors the on-disk JSON shape of the loan terms.
type termsFile struct {
	Principal       decimal.Decimal `json:"principal"`
	StartDate       civil.Date      `json:"start_date"`
	BorrowerName    string          `json:"borrower_name"`
	PropertyAddress string          `json:"property_address"`
	BorrowerEmail   string          `json:"borrower_email"`
	LenderEmail     string          `json:"lender_email"`
	RateSchedule    []rateEntryFile `json:"rate_schedule"`
}

type rateEntryFile struct {
	EffectiveDate civil.Date      `json:"effective_date"`
	AnnualRate    decimal.Decimal `json:"annual_rate"`
}

// LoadTerms reads and validates the loan terms file. Any problem here is a
// configuration error: the caller should log it and exit rather than start
// with a loan it cannot account for. Rate lookups never validate again.
func LoadTerms(path string) (models.LoanTerms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.LoanTerms{}, fmt.Errorf("failed to read terms file: %w", err)
	}

	var tf termsFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return models.LoanTerms{}, fmt.Errorf("failed to parse terms file: %w", err)
	}

	terms := models.LoanTerms{
		Principal:       tf.Principal,
		StartDate:       tf.StartDate,
		BorrowerName:    tf.BorrowerName,
		PropertyAddress: tf.PropertyAddress,
		BorrowerEmail:   tf.BorrowerEmail,
		LenderEmail:     tf.LenderEmail,
	}
	for _, e := range tf.RateSchedule {
		terms.RateSchedule = append(terms.RateSchedule, models.RateEntry{
			EffectiveDate: e.EffectiveDate,
			AnnualRate:    e.AnnualRate,
		})
	}

	if err := validateTerms(terms); err != nil {
		return models.LoanTerms{}, err
	}
	return terms, nil
}

func validateTerms(terms models.LoanTerms) error {
	if terms.Principal.IsNegative() {
		return fmt.Errorf("principal %s must not be negative", terms.Principal)
	}
	if !terms.StartDate.IsValid() {
		return fmt.Errorf("start date %s is not a valid date", terms.StartDate)
	}

	schedule := terms.RateSchedule
	if len(schedule) == 0 {
		return ErrEmptySchedule
	}
	if schedule[0].EffectiveDate.After(terms.StartDate) {
		return fmt.Errorf("first rate entry %s is after loan start %s",
			schedule[0].EffectiveDate, terms.StartDate)
	}

	one := decimal.NewFromInt(1)
	for i, entry := range schedule {
		if !entry.EffectiveDate.IsValid() {
			return fmt.Errorf("rate entry %d: invalid effective date", i)
		}
		if entry.AnnualRate.IsNegative() || entry.AnnualRate.GreaterThanOrEqual(one) {
			return fmt.Errorf("rate entry %d: annual rate %s outside [0, 1)", i, entry.AnnualRate)
		}
		if i > 0 && !schedule[i-1].EffectiveDate.Before(entry.EffectiveDate) {
			return ErrUnsortedSchedule
		}
	}
	return nil
}
