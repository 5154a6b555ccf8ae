package engine

import (
	"context"
	"math"
	"time"
)

// Factor names used as breakdown keys.
const (
	FactorPrice        = "price"
	FactorDaysOnLot    = "days_on_lot"
	FactorIncentives   = "incentives"
	FactorMarketSupply = "market_supply"
	FactorTiming       = "timing"
)

// Factor weights, percent of the total score.
const (
	weightPrice        = 35.0
	weightDaysOnLot    = 25.0
	weightIncentives   = 20.0
	weightMarketSupply = 12.0
	weightTiming       = 8.0
)

// The price factor reaches 0 once asking exceeds true dealer cost by this
// fraction.
const maxPremiumOverCost = 0.20

// A rebate at or above this fraction of MSRP scores the incentive factor
// at maximum.
const maxRebateFraction = 0.15

// Letter-grade thresholds on the total score. Policy constants, part of
// the public contract.
const (
	GradeAMin = 80
	GradeBMin = 65
	GradeCMin = 50
	GradeDMin = 35
)

// ScoreDeal scores a listing 0-100 for the buyer; higher means more
// leverage. asOf is the evaluation date the timing factor is computed
// from; callers pass their own clock so results stay reproducible.
func (e *Engine) ScoreDeal(ctx context.Context, l Listing, asOf time.Time) (ScoreResult, error) {
	if err := l.Validate(); err != nil {
		return ScoreResult{}, err
	}
	if asOf.IsZero() {
		return ScoreResult{}, &InvalidInputError{Field: "as_of", Reason: "evaluation date required"}
	}

	pricing, err := e.ResolvePricing(ctx, l.Make, l.Model, l.Year, l.MSRP)
	if err != nil {
		return ScoreResult{}, err
	}

	breakdown := map[string]FactorScore{
		FactorPrice:        factor(scorePrice(l.AskingPrice, pricing.TrueDealerCost), weightPrice),
		FactorDaysOnLot:    factor(scoreDaysOnLot(l.DaysOnLot), weightDaysOnLot),
		FactorIncentives:   factor(scoreIncentives(l.RebatesAvailable, l.MSRP), weightIncentives),
		FactorMarketSupply: factor(e.scoreMarketSupply(l.Model), weightMarketSupply),
		FactorTiming:       factor(scoreTiming(asOf), weightTiming),
	}

	total := 0.0
	for _, f := range breakdown {
		total += f.Contribution
	}
	score := int(math.Round(clamp(total, 0, 100)))

	return ScoreResult{
		Score:     score,
		Grade:     gradeFor(score),
		Breakdown: breakdown,
		Pricing:   pricing,
	}, nil
}

func factor(score, weight float64) FactorScore {
	score = clamp(score, 0, 100)
	return FactorScore{
		Score:        math.Round(score*10) / 10,
		Weight:       weight,
		Contribution: score * weight / 100,
	}
}

// scorePrice interpolates linearly from 100 at or below true dealer cost
// down to 0 at maxPremiumOverCost above it.
func scorePrice(asking, trueCost float64) float64 {
	if trueCost <= 0 {
		return 50 // no cost data, neutral
	}
	premium := (asking - trueCost) / trueCost
	if premium <= 0 {
		return 100
	}
	return clamp(100*(1-premium/maxPremiumOverCost), 0, 100)
}

// scoreDaysOnLot stages rather than a single line: curtailment penalties
// kick in discontinuously as a unit ages, so buyer leverage does too.
func scoreDaysOnLot(days int) float64 {
	switch {
	case days >= 270:
		return 100
	case days >= 180:
		return 80
	case days >= 120:
		return 65
	case days >= 90:
		return 50
	case days >= 60:
		return 35
	case days >= 30:
		return 20
	default:
		return 10
	}
}

func scoreIncentives(rebates, msrp float64) float64 {
	if msrp <= 0 {
		return 0
	}
	pct := rebates / msrp
	switch {
	case pct >= maxRebateFraction:
		return 100
	case pct >= 0.10:
		return 85
	case pct >= 0.07:
		return 70
	case pct >= 0.05:
		return 55
	case pct >= 0.03:
		return 40
	case pct >= 0.01:
		return 25
	default:
		return 10
	}
}

// scoreMarketSupply compares the model's days supply to the industry
// benchmark. Oversupply is buyer leverage.
func (e *Engine) scoreMarketSupply(model string) float64 {
	days, ok := e.tables.ModelDaysSupply(model)
	if !ok {
		return 40 // unknown, slightly below neutral
	}
	ratio := float64(days) / float64(e.tables.IndustryAvgDaysSupply)
	switch {
	case ratio >= 4:
		return 100
	case ratio >= 2.5:
		return 85
	case ratio >= 1.5:
		return 65
	case ratio >= 1.0:
		return 45
	case ratio >= 0.7:
		return 25
	default:
		return 10
	}
}

// scoreTiming rewards month-end, quarter-end, and year-end shopping dates.
func scoreTiming(d time.Time) float64 {
	score := 30.0

	switch {
	case d.Day() >= 26:
		score += 30
	case d.Day() >= 20:
		score += 15
	}

	switch d.Month() {
	case time.March, time.June, time.September:
		score += 25
	case time.December:
		score += 25 + 15
	}

	return clamp(score, 0, 100)
}

func gradeFor(score int) string {
	switch {
	case score >= GradeAMin:
		return "A"
	case score >= GradeBMin:
		return "B"
	case score >= GradeCMin:
		return "C"
	case score >= GradeDMin:
		return "D"
	default:
		return "F"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
