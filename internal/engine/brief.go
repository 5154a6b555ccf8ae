package engine

import "fmt"

// Talking-point categories.
const (
	CategoryPriceGap       = "price_gap"
	CategoryCarryingCosts  = "carrying_costs"
	CategoryCurtailment    = "curtailment"
	CategoryIncentives     = "incentives"
	CategoryMarketSupply   = "market_supply"
	CategoryCompetingQuote = "competing_quotes"
)

// GenerateBrief turns a scored deal into prioritized talking points with
// scripted phrasing. Categories whose underlying data is absent are
// omitted entirely rather than emitted with placeholder zeros.
func (e *Engine) GenerateBrief(l Listing, pricing PricingResult, score ScoreResult, offers OfferTargets) []TalkingPoint {
	points := make([]TalkingPoint, 0, 6)

	if gap := l.AskingPrice - pricing.TrueDealerCost; gap > 0 {
		gapPct := gap / pricing.TrueDealerCost
		lev := LeverageLow
		switch {
		case gapPct >= 0.10:
			lev = LeverageHigh
		case gapPct >= 0.03:
			lev = LeverageMedium
		}
		points = append(points, TalkingPoint{
			Category: CategoryPriceGap,
			Leverage: lev,
			Point: fmt.Sprintf("The asking price is %s above the dealer's true cost. Invoice is around %s, and holdback brings their actual cost to roughly %s.",
				FormatUSD(gap), FormatUSD(pricing.InvoicePrice), FormatUSD(pricing.TrueDealerCost)),
			Script: fmt.Sprintf("\"I've done my research and the invoice on this truck is around %s. With holdback, your true cost is lower than that. %s is a fair number for both of us.\"",
				FormatUSD(pricing.InvoicePrice), FormatUSD(offers.Reasonable)),
		})
	}

	if l.DaysOnLot > 30 {
		lev := LeverageMedium
		if l.DaysOnLot > 90 {
			lev = LeverageHigh
		}
		points = append(points, TalkingPoint{
			Category: CategoryCarryingCosts,
			Leverage: lev,
			Point: fmt.Sprintf("This %d %s %s has been on the lot for %d days. At about %s/day in floor-plan interest, that's roughly %s in carrying costs so far.",
				l.Year, l.Make, l.Model, l.DaysOnLot, fmt.Sprintf("$%.2f", e.tables.CarryingCostPerDay), FormatUSD(offers.CarryingCosts)),
			Script: fmt.Sprintf("\"I know this truck has been here %d days, and the floor-plan cost on that has to be close to %s. I'd like to help you move it today.\"",
				l.DaysOnLot, FormatUSD(offers.CarryingCosts)),
		})
	}

	if offers.Curtailment > 0 {
		points = append(points, TalkingPoint{
			Category: CategoryCurtailment,
			Leverage: LeverageHigh,
			Point: fmt.Sprintf("Past 90 days the floor-plan lender typically requires curtailment payments. Estimated curtailment on this unit: %s.",
				FormatUSD(offers.Curtailment)),
			Script: "\"I understand units past 90 days start triggering curtailment. Let's find a number that works for both of us so we can close this today.\"",
		})
	}

	if l.RebatesAvailable > 0 {
		lev := LeverageMedium
		if score.Breakdown[FactorIncentives].Score >= 85 {
			lev = LeverageHigh
		}
		points = append(points, TalkingPoint{
			Category: CategoryIncentives,
			Leverage: lev,
			Point: fmt.Sprintf("There are %s in manufacturer rebates and incentives running on this model right now.",
				FormatUSD(l.RebatesAvailable)),
			Script: fmt.Sprintf("\"I want every incentive I qualify for. I see up to %s in current rebates on this model. Can you walk me through which ones apply to this VIN?\"",
				FormatUSD(l.RebatesAvailable)),
		})
	}

	if days, ok := e.tables.ModelDaysSupply(l.Model); ok && days > e.tables.IndustryAvgDaysSupply {
		lev := LeverageMedium
		if score.Breakdown[FactorMarketSupply].Score >= 85 {
			lev = LeverageHigh
		}
		points = append(points, TalkingPoint{
			Category: CategoryMarketSupply,
			Leverage: lev,
			Point: fmt.Sprintf("The %s is sitting at %d days of supply nationally against an industry average of %d. Dealers are oversupplied on this model.",
				l.Model, days, e.tables.IndustryAvgDaysSupply),
			Script: fmt.Sprintf("\"There's no shortage of %ss right now, inventory is at %d days of supply. If we can't agree on a number, the next dealer has plenty on the ground.\"",
				l.Model, days),
		})
	}

	points = append(points, TalkingPoint{
		Category: CategoryCompetingQuote,
		Leverage: LeverageHigh,
		Point:    "Always mention you're collecting quotes from multiple dealers.",
		Script: fmt.Sprintf("\"I'm looking at similar trucks at two other dealerships. I'd prefer to buy from you, but the numbers need to work. My target is %s out the door.\"",
			FormatUSD(offers.Reasonable)),
	})

	return points
}
