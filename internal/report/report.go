// Package report renders evaluations and tax results as plain text for
// terminal output.
package report

import (
	"fmt"
	"strings"

	"dealscout/internal/engine"
	"dealscout/internal/tax"
)

const divider = "──────────────────────────────────────────────"

// Stable display order for the score breakdown.
var factorOrder = []string{
	engine.FactorPrice,
	engine.FactorDaysOnLot,
	engine.FactorIncentives,
	engine.FactorMarketSupply,
	engine.FactorTiming,
}

var factorLabels = map[string]string{
	engine.FactorPrice:        "Price vs true cost",
	engine.FactorDaysOnLot:    "Days on lot",
	engine.FactorIncentives:   "Incentives",
	engine.FactorMarketSupply: "Market supply",
	engine.FactorTiming:       "Timing",
}

// RenderEvaluation formats the full deal evaluation: headline score,
// pricing breakdown, offer targets, and the negotiation brief.
func RenderEvaluation(ev engine.Evaluation) string {
	var b strings.Builder
	l := ev.Listing
	p := ev.Score.Pricing

	fmt.Fprintf(&b, "%d %s %s\n", l.Year, l.Make, l.Model)
	fmt.Fprintf(&b, "Asking %s | MSRP %s | %d days on lot\n",
		engine.FormatUSD(l.AskingPrice), engine.FormatUSD(l.MSRP), l.DaysOnLot)
	fmt.Fprintf(&b, "%s\n", divider)

	fmt.Fprintf(&b, "DEAL SCORE: %d (%s)\n\n", ev.Score.Score, ev.Score.Grade)
	for _, name := range factorOrder {
		f, ok := ev.Score.Breakdown[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-22s %5.1f / 100  (weight %.0f%%)\n", factorLabels[name], f.Score, f.Weight)
	}

	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "DEALER ECONOMICS (%s)\n\n", p.Source)
	fmt.Fprintf(&b, "  Invoice price:     %s\n", engine.FormatUSD(p.InvoicePrice))
	fmt.Fprintf(&b, "  Holdback:          %s\n", engine.FormatUSD(p.Holdback))
	if p.DealerCash > 0 {
		fmt.Fprintf(&b, "  Dealer cash:       %s\n", engine.FormatUSD(p.DealerCash))
	}
	fmt.Fprintf(&b, "  True dealer cost:  %s\n", engine.FormatUSD(p.TrueDealerCost))
	fmt.Fprintf(&b, "  Margin at MSRP:    %s (%.1f%%)\n", engine.FormatUSD(p.MarginFromMSRP), p.MarginPct)

	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "OFFER TARGETS\n\n")
	fmt.Fprintf(&b, "  Aggressive:        %s\n", engine.FormatUSD(ev.Offers.Aggressive))
	fmt.Fprintf(&b, "  Reasonable:        %s\n", engine.FormatUSD(ev.Offers.Reasonable))
	fmt.Fprintf(&b, "  Likely close:      %s\n", engine.FormatUSD(ev.Offers.Likely))
	fmt.Fprintf(&b, "  Carrying costs:    %s to date\n", engine.FormatUSD(ev.Offers.CarryingCosts))
	if ev.Offers.Curtailment > 0 {
		fmt.Fprintf(&b, "  Est. curtailment:  %s\n", engine.FormatUSD(ev.Offers.Curtailment))
	}

	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "NEGOTIATION BRIEF\n")
	for i, tp := range ev.Brief {
		fmt.Fprintf(&b, "\n%d. [%s leverage] %s\n", i+1, strings.ToUpper(string(tp.Leverage)), tp.Point)
		fmt.Fprintf(&b, "   Say: %s\n", tp.Script)
	}

	return b.String()
}

// RenderTax formats a Section 179 result, including the non-qualifying
// case with its reason.
func RenderTax(r tax.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "SECTION 179 ESTIMATE (tax year %d)\n", r.TaxYear)
	fmt.Fprintf(&b, "%s\n", divider)

	if !r.Qualifies {
		fmt.Fprintf(&b, "Does not qualify: %s\n", r.Reason)
		if r.GVWRNote != "" {
			fmt.Fprintf(&b, "%s\n", r.GVWRNote)
		}
		return b.String()
	}

	if r.GVWRNote != "" {
		fmt.Fprintf(&b, "%s\n", r.GVWRNote)
	}
	if r.CapNote != "" {
		fmt.Fprintf(&b, "%s\n", r.CapNote)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  Vehicle price:           %s\n", engine.FormatUSD(r.VehiclePrice))
	fmt.Fprintf(&b, "  Business use:            %.0f%%\n", r.BusinessUsePct)
	fmt.Fprintf(&b, "  First-year deduction:    %s\n", engine.FormatUSD(r.FirstYearDeduction))
	fmt.Fprintf(&b, "  Federal tax savings:     %s\n", engine.FormatUSD(r.FederalTaxSavings))
	if r.StateTaxSavings > 0 {
		fmt.Fprintf(&b, "  State tax savings:       %s\n", engine.FormatUSD(r.StateTaxSavings))
	}
	fmt.Fprintf(&b, "  Total tax savings:       %s\n", engine.FormatUSD(r.TotalTaxSavings))
	fmt.Fprintf(&b, "  Effective cost:          %s\n", engine.FormatUSD(r.EffectiveCostAfterTax))

	if f := r.Financing; f != nil {
		fmt.Fprintf(&b, "%s\n", divider)
		fmt.Fprintf(&b, "FINANCING\n\n")
		fmt.Fprintf(&b, "  Loan amount:             %s\n", engine.FormatUSD(f.LoanAmount))
		fmt.Fprintf(&b, "  Monthly payment:         $%.2f\n", f.MonthlyPayment)
		fmt.Fprintf(&b, "  Total interest:          %s\n", engine.FormatUSD(f.TotalInterest))
		fmt.Fprintf(&b, "  Monthly tax benefit:     $%.2f\n", f.MonthlyTaxBenefit)
		fmt.Fprintf(&b, "  Effective monthly cost:  $%.2f\n", f.EffectiveMonthlyCost)
	}

	b.WriteString("\nEstimates only. Confirm with a tax professional before filing.\n")

	return b.String()
}
