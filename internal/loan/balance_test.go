package loan

import (
	"testing"

	"github.com/thegreengroup/loanbook/internal/models"
)

// tenPerDayTerms accrues exactly 10.00 of interest per day at 10%,
// which keeps expectations in the allocation tests round.
func tenPerDayTerms(t *testing.T) models.LoanTerms {
	t.Helper()
	return models.LoanTerms{
		Principal: dec("36500"),
		StartDate: date(t, "2020-01-01"),
		RateSchedule: []models.RateEntry{
			{EffectiveDate: date(t, "2020-01-01"), AnnualRate: dec("0.10")},
		},
	}
}

func TestStateAsOfAllocation(t *testing.T) {
	// Five days of accrual before the payment leaves 50.00 unpaid interest.
	tests := []struct {
		name          string
		payment       string
		wantPrincipal string
		wantInterest  string
		wantTotal     string
	}{
		{
			name:          "payment below unpaid interest only reduces interest",
			payment:       "30",
			wantPrincipal: "36500",
			wantInterest:  "20",
			wantTotal:     "36520",
		},
		{
			name:          "payment above unpaid interest clears it then reduces principal",
			payment:       "80",
			wantPrincipal: "36470",
			wantInterest:  "0",
			wantTotal:     "36470",
		},
		{
			name:          "exact payoff zeroes everything",
			payment:       "36550",
			wantPrincipal: "0",
			wantInterest:  "0",
			wantTotal:     "0",
		},
		{
			name:          "overpayment drives principal negative",
			payment:       "40000",
			wantPrincipal: "-3450",
			wantInterest:  "0",
			wantTotal:     "-3450",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := tenPerDayTerms(t)
			payments := []models.Payment{
				{Amount: dec(tt.payment), Date: date(t, "2020-01-06"), Seq: 1},
			}

			got := StateAsOf(date(t, "2020-01-06"), payments, terms)

			if !got.Principal.Equal(dec(tt.wantPrincipal)) {
				t.Errorf("principal = %s, want %s", got.Principal, tt.wantPrincipal)
			}
			if !got.Interest.Equal(dec(tt.wantInterest)) {
				t.Errorf("interest = %s, want %s", got.Interest, tt.wantInterest)
			}
			if !got.Total.Equal(dec(tt.wantTotal)) {
				t.Errorf("total = %s, want %s", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestStateAsOfNoPayments(t *testing.T) {
	terms := models.LoanTerms{
		Principal:    dec("120000"),
		StartDate:    date(t, "2019-10-01"),
		RateSchedule: testSchedule(t),
	}

	t.Run("as of the start date", func(t *testing.T) {
		got := StateAsOf(date(t, "2019-10-01"), nil, terms)
		if !got.Principal.Equal(dec("120000")) || !got.Interest.Equal(dec("0")) {
			t.Errorf("got principal=%s interest=%s, want 120000 / 0", got.Principal, got.Interest)
		}
	})

	t.Run("one month in", func(t *testing.T) {
		got := StateAsOf(date(t, "2019-11-01"), nil, terms)
		if !got.Interest.Equal(dec("1019.18")) {
			t.Errorf("interest = %s, want 1019.18", got.Interest)
		}
		if !got.Total.Equal(dec("121019.18")) {
			t.Errorf("total = %s, want 121019.18", got.Total)
		}
	})
}

func TestStateAsOfIdempotent(t *testing.T) {
	terms := tenPerDayTerms(t)
	payments := []models.Payment{
		{Amount: dec("500"), Date: date(t, "2020-02-01"), Seq: 1},
		{Amount: dec("500"), Date: date(t, "2020-03-01"), Seq: 2},
	}
	asOf := date(t, "2020-06-15")

	first := StateAsOf(asOf, payments, terms)
	second := StateAsOf(asOf, payments, terms)

	if !first.Principal.Equal(second.Principal) ||
		!first.Interest.Equal(second.Interest) ||
		!first.Total.Equal(second.Total) {
		t.Errorf("repeated call differs: %+v vs %+v", first, second)
	}
}

func TestStateAsOfPrincipalNonIncreasing(t *testing.T) {
	terms := tenPerDayTerms(t)
	payments := []models.Payment{
		{Amount: dec("200"), Date: date(t, "2020-02-01"), Seq: 1},
		{Amount: dec("5"), Date: date(t, "2020-03-01"), Seq: 2},
		{Amount: dec("10000"), Date: date(t, "2020-04-01"), Seq: 3},
		{Amount: dec("0"), Date: date(t, "2020-05-01"), Seq: 4},
	}

	checkpoints := []string{
		"2020-01-15", "2020-02-01", "2020-03-01", "2020-04-01", "2020-05-01", "2020-12-31",
	}
	prev := StateAsOf(terms.StartDate, payments, terms).Principal
	for _, day := range checkpoints {
		got := StateAsOf(date(t, day), payments, terms).Principal
		if got.GreaterThan(prev) {
			t.Errorf("principal increased: %s as of %s, was %s", got, day, prev)
		}
		prev = got
	}
}

func TestStateAsOfDoesNotMutateInput(t *testing.T) {
	terms := tenPerDayTerms(t)
	payments := []models.Payment{
		{Amount: dec("10"), Date: date(t, "2020-03-01"), Seq: 1},
		{Amount: dec("20"), Date: date(t, "2020-02-01"), Seq: 2},
	}

	StateAsOf(date(t, "2020-06-01"), payments, terms)

	if !payments[0].Date.After(payments[1].Date) {
		t.Error("input slice was reordered by StateAsOf")
	}
}

func TestStateAsOfPaymentsOutOfOrder(t *testing.T) {
	// The engine sorts by date itself, so ledger order and shuffled order
	// must agree for distinct dates.
	terms := tenPerDayTerms(t)
	inOrder := []models.Payment{
		{Amount: dec("100"), Date: date(t, "2020-02-01"), Seq: 1},
		{Amount: dec("200"), Date: date(t, "2020-03-01"), Seq: 2},
	}
	shuffled := []models.Payment{inOrder[1], inOrder[0]}
	asOf := date(t, "2020-04-01")

	a := StateAsOf(asOf, inOrder, terms)
	b := StateAsOf(asOf, shuffled, terms)

	if !a.Total.Equal(b.Total) || !a.Principal.Equal(b.Principal) {
		t.Errorf("order sensitivity: %+v vs %+v", a, b)
	}
}
