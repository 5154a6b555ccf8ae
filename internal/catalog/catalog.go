// Package catalog provides the external data sources the engine consumes:
// exact invoice records, dealer-cash incentives, and GVWR figures.
//
// Every Source returns "not found" (nil record, zero amount, ok=false)
// rather than an error for missing data. Errors mean transport or
// connectivity failure; callers degrade to their own estimation path.
package catalog

import "context"

// InvoiceRecord is an exact invoice entry for a year/make/model.
type InvoiceRecord struct {
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Trim         string  `json:"trim,omitempty"`
	InvoicePrice float64 `json:"invoice_price"`
	Holdback     float64 `json:"holdback_amount"`
}

type Source interface {
	// LookupInvoice returns nil with no error when no record exists.
	LookupInvoice(ctx context.Context, make, model string, year int) (*InvoiceRecord, error)

	// LookupDealerCash returns the current dealer-cash incentive for a
	// make/model, 0 when none is running.
	LookupDealerCash(ctx context.Context, make, model string) (float64, error)

	// LookupGVWR returns the GVWR in pounds; ok is false when unknown.
	LookupGVWR(ctx context.Context, make, model string, year int) (gvwr int, ok bool, err error)
}
