package engine

import "sort"

// lotAgeTier is one row of the canonical lot-age table. One table drives
// both the curtailment estimate and the offer discount depth so the two
// never disagree about when dealer pain starts.
type lotAgeTier struct {
	MinDays         int
	CurtailmentPct  float64 // fraction of invoice price
	DiscountPct     float64 // aggressive discount, fraction of true cost
	ReasonableBlend float64 // position of reasonable between aggressive and asking
	LikelyBlend     float64 // position of likely between aggressive and asking
}

// Ordered deepest tier first; tierForDays takes the first row whose
// MinDays the listing has reached.
var lotAgeTiers = []lotAgeTier{
	{MinDays: 300, CurtailmentPct: 0.20, DiscountPct: 0.13, ReasonableBlend: 0.65, LikelyBlend: 0.80},
	{MinDays: 180, CurtailmentPct: 0.15, DiscountPct: 0.10, ReasonableBlend: 0.70, LikelyBlend: 0.85},
	{MinDays: 90, CurtailmentPct: 0.05, DiscountPct: 0.06, ReasonableBlend: 0.74, LikelyBlend: 0.88},
	{MinDays: 60, CurtailmentPct: 0, DiscountPct: 0.03, ReasonableBlend: 0.78, LikelyBlend: 0.91},
	{MinDays: 30, CurtailmentPct: 0, DiscountPct: 0.01, ReasonableBlend: 0.82, LikelyBlend: 0.93},
	{MinDays: 0, CurtailmentPct: 0, DiscountPct: 0, ReasonableBlend: 0.85, LikelyBlend: 0.95},
}

func tierForDays(days int) lotAgeTier {
	for _, t := range lotAgeTiers {
		if days >= t.MinDays {
			return t
		}
	}
	return lotAgeTiers[len(lotAgeTiers)-1]
}

// Offers never drop below this, regardless of how broken the pricing data
// is.
const minOffer = 1.0

// GenerateOffers derives the three negotiation price points from the
// resolved pricing and the listing's lot age.
//
// Carrying costs are floor-plan interest to date (days x daily rate);
// curtailment is the estimated lender paydown once the unit ages past the
// tier thresholds. Both are context for the buyer; the offers are built
// from true dealer cost, not from them directly, though the aggressive
// target concedes the carrying interest the dealer has already burned.
func (e *Engine) GenerateOffers(l Listing, pricing PricingResult) OfferTargets {
	tier := tierForDays(l.DaysOnLot)

	carrying := float64(l.DaysOnLot) * e.tables.CarryingCostPerDay
	curtailment := pricing.InvoicePrice * tier.CurtailmentPct

	aggressive := pricing.TrueDealerCost - carrying - pricing.TrueDealerCost*tier.DiscountPct
	gap := l.AskingPrice - aggressive
	reasonable := aggressive + gap*tier.ReasonableBlend
	likely := aggressive + gap*tier.LikelyBlend

	offers := []float64{aggressive, reasonable, likely}
	for i, v := range offers {
		if v > l.AskingPrice {
			v = l.AskingPrice
		}
		if v < minOffer {
			v = minOffer
		}
		offers[i] = v
	}
	sort.Float64s(offers)

	return OfferTargets{
		Aggressive:    round2(offers[0]),
		Reasonable:    round2(offers[1]),
		Likely:        round2(offers[2]),
		CarryingCosts: round2(carrying),
		Curtailment:   round2(curtailment),
	}
}
