// Package refdata holds the static reference tables the pricing and tax
// engines read: holdback rates by manufacturer, invoice-to-MSRP ratio bands,
// market days supply, GVWR data, and statutory tax-year limits.
//
// A Store is immutable after construction and is passed explicitly into
// every component. Updates are an operational concern: build a new Store
// (optionally overlaying a YAML file) and swap it at the composition root.
package refdata

import "strings"

// HoldbackBasis selects which price the manufacturer's holdback percentage
// is applied to.
type HoldbackBasis string

const (
	BasisMSRP    HoldbackBasis = "msrp"
	BasisInvoice HoldbackBasis = "invoice"
)

type HoldbackRate struct {
	Rate  float64       `yaml:"rate"`
	Basis HoldbackBasis `yaml:"basis"`
}

// RatioBand is invoice price as a fraction of MSRP per trim tier.
type RatioBand struct {
	Base float64 `yaml:"base"`
	Mid  float64 `yaml:"mid"`
	High float64 `yaml:"high"`
}

// TrimThresholds classifies a trim tier from MSRP: at or under BaseMax is
// base trim, at or over HighMin is high trim, anything between is mid.
type TrimThresholds struct {
	BaseMax float64 `yaml:"base_max"`
	HighMin float64 `yaml:"high_min"`
}

type GVWRInfo struct {
	MinLbs           int  `yaml:"gvwr_min"`
	MaxLbs           int  `yaml:"gvwr_max"`
	PickupSixFootBed bool `yaml:"is_pickup_6ft_bed"`
}

// TaxYearLimits are the statutory first-year deduction limits for one tax
// year. These change annually, hence a table rather than constants.
type TaxYearLimits struct {
	Section179Limit        float64 `yaml:"section_179_limit"`
	BonusDepreciationRate  float64 `yaml:"bonus_depreciation_rate"`
	HeavySUVCap            float64 `yaml:"heavy_suv_cap"`
	LuxuryAutoFirstYearCap float64 `yaml:"luxury_auto_first_year_cap"`
}

type Store struct {
	HoldbackRates   map[string]HoldbackRate
	DefaultHoldback HoldbackRate

	InvoiceRatios       map[string]RatioBand
	TrimThresholds      map[string]TrimThresholds
	DefaultTrim         TrimThresholds
	DefaultInvoiceRatio float64

	DaysSupply            map[string]int
	IndustryAvgDaysSupply int

	GVWR map[string]GVWRInfo

	TaxYears map[int]TaxYearLimits

	// Floor-plan interest per vehicle per day, dollars.
	CarryingCostPerDay float64
}

// Holdback returns the holdback amount for a make given both candidate
// basis values. Unknown makes fall back to DefaultHoldback.
func (s *Store) Holdback(make string, msrp, invoice float64) float64 {
	info, ok := s.HoldbackRates[make]
	if !ok {
		info = s.DefaultHoldback
	}
	basis := msrp
	if info.Basis == BasisInvoice {
		basis = invoice
	}
	return basis * info.Rate
}

// EstimateInvoice estimates invoice price from MSRP using the ratio bands.
// Lookup key is "{Make} {Model}" first, then "{Model}" alone, since listings
// sometimes carry redundant naming like "Ram Ram 2500".
func (s *Store) EstimateInvoice(make, model string, msrp float64) float64 {
	band, ok := s.InvoiceRatios[make+" "+model]
	if !ok {
		band, ok = s.InvoiceRatios[model]
	}
	if !ok {
		return msrp * s.DefaultInvoiceRatio
	}

	thresholds, ok := s.TrimThresholds[model]
	if !ok {
		thresholds = s.DefaultTrim
	}

	ratio := band.Mid
	switch {
	case msrp <= thresholds.BaseMax:
		ratio = band.Base
	case msrp >= thresholds.HighMin:
		ratio = band.High
	}
	return msrp * ratio
}

// ModelDaysSupply returns the current days-of-supply figure for a model,
// trying an exact key then a partial match.
func (s *Store) ModelDaysSupply(model string) (int, bool) {
	if model == "" {
		return 0, false
	}
	if days, ok := s.DaysSupply[model]; ok {
		return days, true
	}
	if key, ok := bestPartialKey(s.DaysSupply, model); ok {
		return s.DaysSupply[key], true
	}
	return 0, false
}

// GVWRForModel looks up GVWR info by model name with partial-match fallback.
func (s *Store) GVWRForModel(model string) (GVWRInfo, bool) {
	if model == "" {
		return GVWRInfo{}, false
	}
	if info, ok := s.GVWR[model]; ok {
		return info, true
	}
	if key, ok := bestPartialKey(s.GVWR, model); ok {
		return s.GVWR[key], true
	}
	return GVWRInfo{}, false
}

// bestPartialKey resolves a partial-match lookup to a single key. Map
// iteration order is randomized, so when several keys match the longest
// one wins (it carries the most model detail), with the lexically
// smallest breaking any remaining tie. Same input, same key, every call.
func bestPartialKey[V any](table map[string]V, model string) (string, bool) {
	best := ""
	found := false
	for key := range table {
		if !strings.Contains(model, key) && !strings.Contains(key, model) {
			continue
		}
		if !found || len(key) > len(best) || (len(key) == len(best) && key < best) {
			best = key
			found = true
		}
	}
	return best, found
}

// LimitsForYear returns the statutory limits for a tax year.
func (s *Store) LimitsForYear(year int) (TaxYearLimits, bool) {
	limits, ok := s.TaxYears[year]
	return limits, ok
}

// LatestTaxYear is the most recent year present in the limits table.
func (s *Store) LatestTaxYear() int {
	latest := 0
	for year := range s.TaxYears {
		if year > latest {
			latest = year
		}
	}
	return latest
}
