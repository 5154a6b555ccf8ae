package engine

import (
	"strings"
	"time"
)

// Plausible model-year window for listing validation.
const (
	MinModelYear = 1980
	MaxModelYear = 2035
)

// Listing is one vehicle listing as supplied by the caller. Constructed
// per request, never persisted by the engine.
type Listing struct {
	AskingPrice      float64 `json:"asking_price"`
	MSRP             float64 `json:"msrp"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	Year             int     `json:"year"`
	DaysOnLot        int     `json:"days_on_lot"`
	RebatesAvailable float64 `json:"rebates_available"`
}

// Validate rejects malformed listings before any scoring happens.
func (l Listing) Validate() error {
	switch {
	case l.AskingPrice <= 0:
		return &InvalidInputError{Field: "asking_price", Reason: "must be positive"}
	case l.MSRP <= 0:
		return &InvalidInputError{Field: "msrp", Reason: "must be positive"}
	case strings.TrimSpace(l.Make) == "":
		return &InvalidInputError{Field: "make", Reason: "must not be blank"}
	case strings.TrimSpace(l.Model) == "":
		return &InvalidInputError{Field: "model", Reason: "must not be blank"}
	case l.Year < MinModelYear || l.Year > MaxModelYear:
		return &InvalidInputError{Field: "year", Reason: "outside plausible vehicle-year range"}
	case l.DaysOnLot < 0:
		return &InvalidInputError{Field: "days_on_lot", Reason: "must not be negative"}
	case l.RebatesAvailable < 0:
		return &InvalidInputError{Field: "rebates_available", Reason: "must not be negative"}
	}
	return nil
}

// PriceSource tags whether an invoice price came from an exact catalog
// record or a ratio estimate.
type PriceSource string

const (
	PriceSourceCached    PriceSource = "cached"
	PriceSourceEstimated PriceSource = "estimated"
)

// PricingResult is the resolved dealer economics for one vehicle.
// TrueDealerCost = InvoicePrice - Holdback - DealerCash, floored at a
// small positive guard value.
type PricingResult struct {
	MSRP           float64     `json:"msrp"`
	InvoicePrice   float64     `json:"invoice_price"`
	Holdback       float64     `json:"holdback"`
	DealerCash     float64     `json:"dealer_cash"`
	TrueDealerCost float64     `json:"true_dealer_cost"`
	MarginFromMSRP float64     `json:"margin_from_msrp"`
	MarginPct      float64     `json:"margin_pct"`
	Source         PriceSource `json:"source"`
}

// FactorScore is one weighted scoring factor. Score is clamped to [0,100]
// before weighting; Weight is the factor's percentage of the total.
type FactorScore struct {
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// ScoreResult is the full deal score with its per-factor breakdown and the
// pricing it was computed from.
type ScoreResult struct {
	Score     int                    `json:"score"`
	Grade     string                 `json:"grade"`
	Breakdown map[string]FactorScore `json:"breakdown"`
	Pricing   PricingResult          `json:"pricing"`
}

// OfferTargets are the three negotiation price points, ordered
// Aggressive <= Reasonable <= Likely <= asking price by construction.
// CarryingCosts is the dealer's estimated floor-plan interest to date and
// Curtailment the estimated lender paydown pressure; both are context
// figures, never offer components.
type OfferTargets struct {
	Aggressive    float64 `json:"aggressive"`
	Reasonable    float64 `json:"reasonable"`
	Likely        float64 `json:"likely"`
	CarryingCosts float64 `json:"carrying_costs"`
	Curtailment   float64 `json:"curtailment"`
}

// Leverage grades how hard a talking point can be pushed.
type Leverage string

const (
	LeverageLow    Leverage = "low"
	LeverageMedium Leverage = "medium"
	LeverageHigh   Leverage = "high"
)

// TalkingPoint is one prioritized negotiation angle with a ready-to-say
// script carrying concrete dollar figures.
type TalkingPoint struct {
	Category string   `json:"category"`
	Leverage Leverage `json:"leverage"`
	Point    string   `json:"point"`
	Script   string   `json:"script"`
}

// Evaluation bundles everything the engine produces for one listing.
type Evaluation struct {
	Listing Listing        `json:"listing"`
	AsOf    time.Time      `json:"as_of"`
	Score   ScoreResult    `json:"score"`
	Offers  OfferTargets   `json:"offers"`
	Brief   []TalkingPoint `json:"brief"`
}
