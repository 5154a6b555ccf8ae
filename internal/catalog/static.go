package catalog

import (
	"context"
	"strconv"
)

// Static is an in-process Source backed by fixed maps. It backs offline
// runs and tests; Seed() carries the February 2026 incentive snapshot.
type Static struct {
	Invoices   map[string]InvoiceRecord // key: "Make Model Year"
	DealerCash map[string]float64       // key: "Make Model"
	GVWR       map[string]int           // key: "Make Model"
}

// Seed returns a Static catalog with current dealer-cash programs.
// Customer-facing rebates are a listing input, not catalog data; only
// dealer cash lives here because it changes true dealer cost.
func Seed() *Static {
	return &Static{
		Invoices: map[string]InvoiceRecord{},
		DealerCash: map[string]float64{
			"Ford F-150":               1000,
			"Chevrolet Silverado 1500": 750,
			"GMC Sierra 1500":          500,
			"Nissan Titan":             1500,
		},
		GVWR: map[string]int{},
	}
}

func (s *Static) LookupInvoice(_ context.Context, make, model string, year int) (*InvoiceRecord, error) {
	rec, ok := s.Invoices[invoiceKey(make, model, year)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *Static) LookupDealerCash(_ context.Context, make, model string) (float64, error) {
	return s.DealerCash[make+" "+model], nil
}

func (s *Static) LookupGVWR(_ context.Context, make, model string, _ int) (int, bool, error) {
	gvwr, ok := s.GVWR[make+" "+model]
	return gvwr, ok, nil
}

func invoiceKey(make, model string, year int) string {
	return make + " " + model + " " + strconv.Itoa(year)
}
