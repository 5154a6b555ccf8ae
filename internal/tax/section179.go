// Package tax implements the Section 179 accelerated-deduction calculator.
// It is independent of the deal engine: its only shared dependency is the
// reference data store's GVWR table and tax-year limits.
package tax

import (
	"fmt"
	"math"

	"dealscout/internal/engine"
	"dealscout/internal/refdata"
)

// Statutory GVWR thresholds, pounds. Vehicles under the minimum fall under
// the luxury-auto regime and do not qualify here; vehicles at or above the
// heavy-exempt line escape the SUV cap regardless of body style; pickups
// with a 6ft+ bed escape it anywhere above the minimum.
const (
	GVWRMinimumLbs     = 6_000
	HeavyExemptGVWRLbs = 14_000
)

// Business use must exceed this percentage for any deduction at all.
const BusinessUseMinimumPct = 50.0

// Input is one calculation request. TaxYear 0 means the latest year in the
// limits table. GVWROverrideLbs 0 means "resolve from the model table".
type Input struct {
	VehiclePrice     float64 `json:"vehicle_price"`
	BusinessUsePct   float64 `json:"business_use_pct"`
	TaxBracket       float64 `json:"tax_bracket"`
	StateTaxRate     float64 `json:"state_tax_rate"`
	DownPayment      float64 `json:"down_payment"`
	LoanInterestRate float64 `json:"loan_interest_rate"`
	LoanTermMonths   int     `json:"loan_term_months"`
	Model            string  `json:"model,omitempty"`
	GVWROverrideLbs  int     `json:"gvwr_override,omitempty"`
	TaxYear          int     `json:"tax_year,omitempty"`
}

// Financing is the optional loan breakdown. MonthlyTaxBenefit spreads the
// total first-year savings evenly across the loan term, an approximation
// of true tax timing, kept deliberately simple and documented as such.
type Financing struct {
	DownPayment          float64 `json:"down_payment"`
	LoanAmount           float64 `json:"loan_amount"`
	MonthlyPayment       float64 `json:"monthly_payment"`
	TotalInterest        float64 `json:"total_interest"`
	TotalLoanCost        float64 `json:"total_loan_cost"`
	MonthlyTaxBenefit    float64 `json:"monthly_tax_benefit"`
	EffectiveMonthlyCost float64 `json:"effective_monthly_cost"`
}

// Result reports qualification as data, never as an error: Qualifies=false
// with a Reason is a normal outcome. GVWRNote and CapNote are user-facing
// explanations of which rule applied.
type Result struct {
	Qualifies bool   `json:"qualifies"`
	Reason    string `json:"reason,omitempty"`

	VehiclePrice   float64 `json:"vehicle_price"`
	BusinessUsePct float64 `json:"business_use_pct"`
	TaxYear        int     `json:"tax_year"`
	GVWRLbs        int     `json:"gvwr,omitempty"`
	GVWRNote       string  `json:"gvwr_note,omitempty"`
	CapNote        string  `json:"cap_note,omitempty"`

	FirstYearDeduction    float64 `json:"first_year_deduction,omitempty"`
	FederalTaxSavings     float64 `json:"federal_tax_savings,omitempty"`
	StateTaxSavings       float64 `json:"state_tax_savings,omitempty"`
	TotalTaxSavings       float64 `json:"total_tax_savings,omitempty"`
	EffectiveCostAfterTax float64 `json:"effective_cost_after_tax,omitempty"`

	Section179Limit       float64 `json:"section_179_limit,omitempty"`
	BonusDepreciationRate float64 `json:"bonus_depreciation_rate,omitempty"`

	Financing *Financing `json:"financing,omitempty"`
}

// Calculate determines first-year Section 179 eligibility and savings.
func Calculate(tables *refdata.Store, in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	year := in.TaxYear
	if year == 0 {
		year = tables.LatestTaxYear()
	}
	limits, ok := tables.LimitsForYear(year)
	if !ok {
		return Result{}, &engine.DataUnavailableError{Lookup: fmt.Sprintf("tax-year limits for %d", year)}
	}

	out := Result{
		VehiclePrice:   in.VehiclePrice,
		BusinessUsePct: in.BusinessUsePct,
		TaxYear:        year,
	}

	if in.BusinessUsePct <= BusinessUseMinimumPct {
		out.Reason = fmt.Sprintf("business use must exceed %.0f%%; got %.0f%%", BusinessUseMinimumPct, in.BusinessUsePct)
		return out, nil
	}

	gvwr, gvwrNote, pickup := resolveGVWR(tables, in)
	if gvwr == 0 {
		out.Reason = "GVWR could not be determined; supply a GVWR override or a known model"
		out.GVWRNote = gvwrNote
		return out, nil
	}
	out.GVWRLbs = gvwr
	out.GVWRNote = gvwrNote

	if gvwr < GVWRMinimumLbs {
		out.Reason = fmt.Sprintf("GVWR of %d lbs is below the %d lb minimum for accelerated first-year deduction", gvwr, GVWRMinimumLbs)
		return out, nil
	}

	var deductionCap float64
	switch {
	case gvwr >= HeavyExemptGVWRLbs:
		deductionCap = limits.Section179Limit
		out.CapNote = fmt.Sprintf("GVWR of %d lbs is at or above %d lbs: exempt from the heavy SUV cap, full Section 179 limit applies.", gvwr, HeavyExemptGVWRLbs)
	case pickup:
		deductionCap = limits.Section179Limit
		out.CapNote = "Pickup truck with 6ft+ bed: exempt from the heavy SUV cap, full Section 179 limit applies."
	default:
		deductionCap = limits.HeavySUVCap
		out.CapNote = fmt.Sprintf("Non-pickup vehicle between %d and %d lbs GVWR: heavy SUV cap of %s applies.", GVWRMinimumLbs, HeavyExemptGVWRLbs, engine.FormatUSD(limits.HeavySUVCap))
	}

	businessPortion := in.VehiclePrice * in.BusinessUsePct / 100
	deduction := math.Min(businessPortion, math.Min(deductionCap, limits.Section179Limit))

	federal := deduction * in.TaxBracket / 100
	state := deduction * in.StateTaxRate / 100
	total := federal + state

	out.Qualifies = true
	out.FirstYearDeduction = round2(deduction)
	out.FederalTaxSavings = round2(federal)
	out.StateTaxSavings = round2(state)
	out.TotalTaxSavings = round2(total)
	out.EffectiveCostAfterTax = round2(in.VehiclePrice - total)
	out.Section179Limit = limits.Section179Limit
	out.BonusDepreciationRate = limits.BonusDepreciationRate
	out.Financing = financing(in, total)

	return out, nil
}

func validate(in Input) error {
	switch {
	case in.VehiclePrice <= 0:
		return &engine.InvalidInputError{Field: "vehicle_price", Reason: "must be positive"}
	case in.BusinessUsePct < 0 || in.BusinessUsePct > 100:
		return &engine.InvalidInputError{Field: "business_use_pct", Reason: "must be between 0 and 100"}
	case in.TaxBracket < 0 || in.TaxBracket > 100:
		return &engine.InvalidInputError{Field: "tax_bracket", Reason: "must be between 0 and 100"}
	case in.StateTaxRate < 0 || in.StateTaxRate > 100:
		return &engine.InvalidInputError{Field: "state_tax_rate", Reason: "must be between 0 and 100"}
	case in.DownPayment < 0:
		return &engine.InvalidInputError{Field: "down_payment", Reason: "must not be negative"}
	case in.LoanInterestRate < 0:
		return &engine.InvalidInputError{Field: "loan_interest_rate", Reason: "must not be negative"}
	case in.LoanTermMonths < 0:
		return &engine.InvalidInputError{Field: "loan_term_months", Reason: "must not be negative"}
	}
	return nil
}

func resolveGVWR(tables *refdata.Store, in Input) (gvwr int, note string, pickup bool) {
	if info, ok := tables.GVWRForModel(in.Model); ok {
		pickup = info.PickupSixFootBed
		if in.GVWROverrideLbs > 0 {
			return in.GVWROverrideLbs, "Using manually entered GVWR", pickup
		}
		return info.MinLbs, fmt.Sprintf("Estimated GVWR range: %d-%d lbs", info.MinLbs, info.MaxLbs), pickup
	}
	if in.GVWROverrideLbs > 0 {
		return in.GVWROverrideLbs, "Using manually entered GVWR; model not in reference table", false
	}
	return 0, "Model not in reference table and no GVWR override given", false
}

// financing computes the standard amortization breakdown when loan terms
// are present. A zero interest rate is promotional 0% APR financing and
// amortizes straight-line.
func financing(in Input, totalSavings float64) *Financing {
	if in.LoanTermMonths <= 0 {
		return nil
	}
	loan := in.VehiclePrice - in.DownPayment
	if loan <= 0 {
		return nil
	}

	var monthly float64
	if in.LoanInterestRate > 0 {
		rate := in.LoanInterestRate / 100 / 12
		n := float64(in.LoanTermMonths)
		monthly = loan * rate / (1 - math.Pow(1+rate, -n))
	} else {
		monthly = loan / float64(in.LoanTermMonths)
	}

	totalInterest := monthly*float64(in.LoanTermMonths) - loan
	monthlyBenefit := totalSavings / float64(in.LoanTermMonths)

	return &Financing{
		DownPayment:          round2(in.DownPayment),
		LoanAmount:           round2(loan),
		MonthlyPayment:       round2(monthly),
		TotalInterest:        round2(totalInterest),
		TotalLoanCost:        round2(loan + totalInterest),
		MonthlyTaxBenefit:    round2(monthlyBenefit),
		EffectiveMonthlyCost: round2(monthly - monthlyBenefit),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
