package engine

import (
	"context"
	"math"
)

// Guard floor for true dealer cost. Invoice minus holdback minus dealer
// cash underflowing to zero or below is a data error; clamping keeps
// downstream ratios finite.
const minTrueDealerCost = 1.0

// ResolvePricing derives the dealer's true acquisition cost for a vehicle.
//
// An exact invoice record is preferred when the catalog has one
// (Source "cached"); otherwise invoice is estimated from MSRP via the
// segment ratio bands (Source "estimated"). Catalog transport failures are
// treated as "no record" and fall back to estimation.
func (e *Engine) ResolvePricing(ctx context.Context, make, model string, year int, msrp float64) (PricingResult, error) {
	if msrp <= 0 {
		return PricingResult{}, &InvalidInputError{Field: "msrp", Reason: "must be positive"}
	}

	var (
		invoice  float64
		holdback float64
		source   = PriceSourceEstimated
	)

	if e.catalog != nil {
		rec, err := e.catalog.LookupInvoice(ctx, make, model, year)
		if err == nil && rec != nil {
			invoice = rec.InvoicePrice
			holdback = rec.Holdback
			source = PriceSourceCached
		}
	}

	if invoice <= 0 {
		invoice = e.tables.EstimateInvoice(make, model, msrp)
		source = PriceSourceEstimated
	}
	if holdback <= 0 {
		holdback = e.tables.Holdback(make, msrp, invoice)
	}

	dealerCash := 0.0
	if e.catalog != nil {
		if cash, err := e.catalog.LookupDealerCash(ctx, make, model); err == nil && cash > 0 {
			dealerCash = cash
		}
	}

	trueCost := invoice - holdback - dealerCash
	if trueCost < minTrueDealerCost {
		trueCost = minTrueDealerCost
	}

	margin := msrp - trueCost

	return PricingResult{
		MSRP:           msrp,
		InvoicePrice:   round2(invoice),
		Holdback:       round2(holdback),
		DealerCash:     dealerCash,
		TrueDealerCost: round2(trueCost),
		MarginFromMSRP: round2(margin),
		MarginPct:      math.Round(margin/msrp*1000) / 10,
		Source:         source,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
