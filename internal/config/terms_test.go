package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTerms(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loan.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const validTerms = `{
	"principal": "120000",
	"start_date": "2019-10-01",
	"borrower_name": "Hassan Majied",
	"property_address": "761 W Pratt St, Baltimore, MD",
	"borrower_email": "borrower@example.com",
	"lender_email": "lender@example.com",
	"rate_schedule": [
		{"effective_date": "2019-10-01", "annual_rate": "0.10"},
		{"effective_date": "2020-10-01", "annual_rate": "0.12"}
	]
}`

func TestLoadTerms(t *testing.T) {
	terms, err := LoadTerms(writeTerms(t, validTerms))
	require.NoError(t, err)

	assert.Equal(t, "120000", terms.Principal.String())
	assert.Equal(t, "2019-10-01", terms.StartDate.String())
	assert.Equal(t, "Hassan Majied", terms.BorrowerName)
	require.Len(t, terms.RateSchedule, 2)
	assert.Equal(t, "0.12", terms.RateSchedule[1].AnnualRate.String())
}

func TestLoadTermsMissingFile(t *testing.T) {
	_, err := LoadTerms(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadTermsRejectsBadSchedules(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "empty schedule",
			body: `{"principal": "1000", "start_date": "2019-10-01", "rate_schedule": []}`,
		},
		{
			name: "unsorted schedule",
			body: `{"principal": "1000", "start_date": "2019-10-01", "rate_schedule": [
				{"effective_date": "2020-10-01", "annual_rate": "0.12"},
				{"effective_date": "2019-10-01", "annual_rate": "0.10"}
			]}`,
		},
		{
			name: "first entry after loan start",
			body: `{"principal": "1000", "start_date": "2019-10-01", "rate_schedule": [
				{"effective_date": "2019-11-01", "annual_rate": "0.10"}
			]}`,
		},
		{
			name: "rate of 1 or more",
			body: `{"principal": "1000", "start_date": "2019-10-01", "rate_schedule": [
				{"effective_date": "2019-10-01", "annual_rate": "1.0"}
			]}`,
		},
		{
			name: "negative rate",
			body: `{"principal": "1000", "start_date": "2019-10-01", "rate_schedule": [
				{"effective_date": "2019-10-01", "annual_rate": "-0.05"}
			]}`,
		},
		{
			name: "negative principal",
			body: `{"principal": "-1", "start_date": "2019-10-01", "rate_schedule": [
				{"effective_date": "2019-10-01", "annual_rate": "0.10"}
			]}`,
		},
		{
			name: "malformed json",
			body: `{"principal":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTerms(writeTerms(t, tt.body))
			assert.Error(t, err)
		})
	}
}
