package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealscout/internal/engine"
	"dealscout/internal/refdata"
)

func calc(t *testing.T, in Input) Result {
	t.Helper()
	out, err := Calculate(refdata.Default(), in)
	require.NoError(t, err)
	return out
}

func TestCalculateQualifyingPickup(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:   70000,
		BusinessUsePct: 100,
		TaxBracket:     32,
		Model:          "Ram 2500",
	})

	require.True(t, out.Qualifies)
	assert.Empty(t, out.Reason)
	assert.Equal(t, 2026, out.TaxYear)
	assert.Equal(t, 9000, out.GVWRLbs)
	assert.Contains(t, out.CapNote, "6ft+ bed")

	// Full price deductible: pickup exemption lifts the SUV cap and the
	// price is far under the Section 179 limit.
	assert.InDelta(t, 70000, out.FirstYearDeduction, 0.01)
	assert.InDelta(t, 22400, out.FederalTaxSavings, 0.01)
	assert.Equal(t, 0.0, out.StateTaxSavings)
	assert.InDelta(t, 22400, out.TotalTaxSavings, 0.01)
	assert.InDelta(t, 47600, out.EffectiveCostAfterTax, 0.01)
	assert.Nil(t, out.Financing)
}

func TestCalculateWithStateTax(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:   70000,
		BusinessUsePct: 100,
		TaxBracket:     32,
		StateTaxRate:   5,
		Model:          "Ram 2500",
	})

	require.True(t, out.Qualifies)
	assert.InDelta(t, 3500, out.StateTaxSavings, 0.01)
	assert.InDelta(t, 25900, out.TotalTaxSavings, 0.01)
}

func TestCalculatePartialBusinessUse(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:   70000,
		BusinessUsePct: 75,
		TaxBracket:     32,
		Model:          "Ram 2500",
	})

	require.True(t, out.Qualifies)
	assert.InDelta(t, 52500, out.FirstYearDeduction, 0.01)
}

func TestCalculateBusinessUseMustExceedHalf(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:   70000,
		BusinessUsePct: 50,
		TaxBracket:     32,
		Model:          "Ram 2500",
	})

	assert.False(t, out.Qualifies)
	assert.Contains(t, out.Reason, "business use")
	assert.Zero(t, out.FirstYearDeduction)
}

func TestCalculateGVWRBelowMinimum(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:    55000,
		BusinessUsePct:  100,
		TaxBracket:      24,
		GVWROverrideLbs: 5500,
	})

	assert.False(t, out.Qualifies)
	assert.Contains(t, out.Reason, "below")
	assert.Equal(t, 5500, out.GVWRLbs)
	assert.Zero(t, out.FirstYearDeduction)
	assert.Zero(t, out.TotalTaxSavings)
}

func TestCalculateUnknownGVWR(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:   55000,
		BusinessUsePct: 100,
		TaxBracket:     24,
		Model:          "Cybertruck",
	})

	assert.False(t, out.Qualifies)
	assert.Contains(t, out.Reason, "GVWR")
}

func TestCalculateHeavySUVCap(t *testing.T) {
	// 7,000 lb GVWR with no pickup bed: capped by the SUV limit.
	out := calc(t, Input{
		VehiclePrice:    90000,
		BusinessUsePct:  100,
		TaxBracket:      32,
		GVWROverrideLbs: 7000,
		TaxYear:         2026,
	})

	require.True(t, out.Qualifies)
	assert.InDelta(t, 32000, out.FirstYearDeduction, 0.01)
	assert.Contains(t, out.CapNote, "heavy SUV cap")
}

func TestCalculateHeavyExempt(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:    90000,
		BusinessUsePct:  100,
		TaxBracket:      32,
		GVWROverrideLbs: 14000,
		TaxYear:         2026,
	})

	require.True(t, out.Qualifies)
	assert.InDelta(t, 90000, out.FirstYearDeduction, 0.01)
	assert.Contains(t, out.CapNote, "exempt")
}

func TestCalculateFinancingZeroAPR(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:   70000,
		BusinessUsePct: 100,
		TaxBracket:     32,
		Model:          "Ram 2500",
		DownPayment:    10000,
		LoanTermMonths: 60,
	})

	require.True(t, out.Qualifies)
	f := out.Financing
	require.NotNil(t, f)
	assert.InDelta(t, 60000, f.LoanAmount, 0.01)
	assert.InDelta(t, 1000, f.MonthlyPayment, 0.01)
	assert.InDelta(t, 0, f.TotalInterest, 0.01)
	assert.InDelta(t, 22400.0/60, f.MonthlyTaxBenefit, 0.01)
	assert.InDelta(t, 1000-22400.0/60, f.EffectiveMonthlyCost, 0.01)
}

func TestCalculateFinancingAmortized(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:     70000,
		BusinessUsePct:   100,
		TaxBracket:       32,
		Model:            "Ram 2500",
		DownPayment:      10000,
		LoanInterestRate: 6,
		LoanTermMonths:   60,
	})

	f := out.Financing
	require.NotNil(t, f)
	assert.InDelta(t, 1159.97, f.MonthlyPayment, 0.5)
	assert.InDelta(t, f.MonthlyPayment*60-60000, f.TotalInterest, 0.01)
	assert.InDelta(t, 60000+f.TotalInterest, f.TotalLoanCost, 0.01)
}

func TestCalculateNoFinancingWhenPaidInFull(t *testing.T) {
	out := calc(t, Input{
		VehiclePrice:   70000,
		BusinessUsePct: 100,
		TaxBracket:     32,
		Model:          "Ram 2500",
		DownPayment:    70000,
		LoanTermMonths: 60,
	})
	assert.Nil(t, out.Financing)
}

func TestCalculateInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"zero price", Input{BusinessUsePct: 100}, "vehicle_price"},
		{"business use over 100", Input{VehiclePrice: 70000, BusinessUsePct: 120}, "business_use_pct"},
		{"negative bracket", Input{VehiclePrice: 70000, BusinessUsePct: 100, TaxBracket: -1}, "tax_bracket"},
		{"negative term", Input{VehiclePrice: 70000, BusinessUsePct: 100, LoanTermMonths: -12}, "loan_term_months"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(refdata.Default(), tt.in)
			var invalid *engine.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestCalculateUnknownTaxYear(t *testing.T) {
	_, err := Calculate(refdata.Default(), Input{
		VehiclePrice:   70000,
		BusinessUsePct: 100,
		TaxYear:        2030,
	})
	var unavailable *engine.DataUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestCalculateDeterministic(t *testing.T) {
	in := Input{
		VehiclePrice:   70000,
		BusinessUsePct: 100,
		TaxBracket:     32,
		Model:          "Ram 2500",
	}
	first := calc(t, in)
	second := calc(t, in)
	assert.Equal(t, first, second)
}
