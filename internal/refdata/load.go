package refdata

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// overlay is the YAML shape accepted by LoadFile. Every section is
// optional; map entries merge over the defaults, scalars replace them only
// when set.
type overlay struct {
	HoldbackRates         map[string]HoldbackRate   `yaml:"holdback_rates"`
	DefaultHoldback       *HoldbackRate             `yaml:"default_holdback"`
	InvoiceRatios         map[string]RatioBand      `yaml:"invoice_ratios"`
	TrimThresholds        map[string]TrimThresholds `yaml:"trim_thresholds"`
	DefaultInvoiceRatio   float64                   `yaml:"default_invoice_ratio"`
	DaysSupply            map[string]int            `yaml:"days_supply"`
	IndustryAvgDaysSupply int                       `yaml:"industry_avg_days_supply"`
	GVWR                  map[string]GVWRInfo       `yaml:"gvwr"`
	TaxYears              map[int]TaxYearLimits     `yaml:"tax_years"`
	CarryingCostPerDay    float64                   `yaml:"carrying_cost_per_day"`
}

// LoadFile returns the default tables with a YAML overlay merged on top.
// This is the batch-reload path: operators ship a data file, the process
// restarts with it.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read refdata file: %w", err)
	}

	var ov overlay
	if err := yaml.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("parse refdata file %s: %w", path, err)
	}

	s := Default()
	for make, rate := range ov.HoldbackRates {
		s.HoldbackRates[make] = rate
	}
	if ov.DefaultHoldback != nil {
		s.DefaultHoldback = *ov.DefaultHoldback
	}
	for key, band := range ov.InvoiceRatios {
		s.InvoiceRatios[key] = band
	}
	for model, t := range ov.TrimThresholds {
		s.TrimThresholds[model] = t
	}
	if ov.DefaultInvoiceRatio > 0 {
		s.DefaultInvoiceRatio = ov.DefaultInvoiceRatio
	}
	for model, days := range ov.DaysSupply {
		s.DaysSupply[model] = days
	}
	if ov.IndustryAvgDaysSupply > 0 {
		s.IndustryAvgDaysSupply = ov.IndustryAvgDaysSupply
	}
	for model, info := range ov.GVWR {
		s.GVWR[model] = info
	}
	for year, limits := range ov.TaxYears {
		s.TaxYears[year] = limits
	}
	if ov.CarryingCostPerDay > 0 {
		s.CarryingCostPerDay = ov.CarryingCostPerDay
	}
	return s, nil
}
