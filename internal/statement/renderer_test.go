package statement

import (
	"bytes"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thegreengroup/loanbook/internal/loan"
	"github.com/thegreengroup/loanbook/internal/models"
)

func testData(t *testing.T) Data {
	t.Helper()
	return Data{
		BorrowerName:      "Hassan Majied",
		PropertyAddress:   "761 W Pratt St, Baltimore, MD",
		OriginalPrincipal: decimal.RequireFromString("120000"),
		StatementDate:     civil.Date{Year: 2020, Month: 11, Day: 1},
		Balance: loan.Snapshot{
			Principal: decimal.RequireFromString("118500.00"),
			Interest:  decimal.RequireFromString("1019.18"),
			Total:     decimal.RequireFromString("119519.18"),
		},
		Payments: []models.Payment{
			{Amount: decimal.RequireFromString("2500"), Date: civil.Date{Year: 2020, Month: 10, Day: 15}},
		},
	}
}

func TestRender(t *testing.T) {
	lines := Render(testData(t))

	want := []string{
		"Loan Statement - 761 W Pratt St, Baltimore, MD",
		"Statement Date: 2020-11-01",
		"Borrower: Hassan Majied",
		"Original Principal: $120,000.00",
		"Principal Balance: $118,500.00",
		"Accrued Interest: $1,019.18",
		"Current Balance: $119,519.18",
		"",
		"Payments:",
		"2020-10-15 - $2,500.00",
	}
	assert.Equal(t, want, lines)
}

func TestRenderNoPayments(t *testing.T) {
	d := testData(t)
	d.Payments = nil

	lines := Render(d)
	assert.Equal(t, "(none)", lines[len(lines)-1])
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"1019.18", "$1,019.18"},
		{"120000", "$120,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-3450", "-$3,450.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatUSD(decimal.RequireFromString(tt.in)), "input %s", tt.in)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "statement_2020-11-01.pdf",
		Filename(civil.Date{Year: 2020, Month: 11, Day: 1}))
}

func TestEncodePDF(t *testing.T) {
	data, err := EncodePDF(Render(testData(t)))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "not a PDF header")
	assert.Greater(t, len(data), 500)
}
