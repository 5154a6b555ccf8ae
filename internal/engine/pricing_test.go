package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealscout/internal/catalog"
	"dealscout/internal/refdata"
)

// fakeSource is a canned catalog for pricing tests.
type fakeSource struct {
	invoice    *catalog.InvoiceRecord
	dealerCash float64
	err        error
}

func (f *fakeSource) LookupInvoice(context.Context, string, string, int) (*catalog.InvoiceRecord, error) {
	return f.invoice, f.err
}

func (f *fakeSource) LookupDealerCash(context.Context, string, string) (float64, error) {
	return f.dealerCash, f.err
}

func (f *fakeSource) LookupGVWR(context.Context, string, string, int) (int, bool, error) {
	return 0, false, f.err
}

func TestResolvePricingEstimated(t *testing.T) {
	e := New(refdata.Default(), nil)

	p, err := e.ResolvePricing(context.Background(), "Ram", "Ram 2500", 2024, 65000)
	require.NoError(t, err)

	assert.InDelta(t, 58500, p.InvoicePrice, 0.01)
	assert.InDelta(t, 1950, p.Holdback, 0.01)
	assert.Equal(t, 0.0, p.DealerCash)
	assert.InDelta(t, 56550, p.TrueDealerCost, 0.01)
	assert.Equal(t, PriceSourceEstimated, p.Source)
	assert.InDelta(t, 8450, p.MarginFromMSRP, 0.01)
	assert.InDelta(t, 13.0, p.MarginPct, 0.05)
}

func TestResolvePricingFromCatalog(t *testing.T) {
	src := &fakeSource{
		invoice:    &catalog.InvoiceRecord{Make: "Ford", Model: "F-150", Year: 2025, InvoicePrice: 54600, Holdback: 1800},
		dealerCash: 1000,
	}
	e := New(refdata.Default(), src)

	p, err := e.ResolvePricing(context.Background(), "Ford", "F-150", 2025, 60000)
	require.NoError(t, err)

	assert.Equal(t, PriceSourceCached, p.Source)
	assert.InDelta(t, 54600, p.InvoicePrice, 0.01)
	assert.InDelta(t, 1800, p.Holdback, 0.01)
	assert.InDelta(t, 1000, p.DealerCash, 0.01)
	assert.InDelta(t, 51800, p.TrueDealerCost, 0.01)
}

func TestResolvePricingSourceErrorFallsBack(t *testing.T) {
	src := &fakeSource{err: errors.New("provider down")}
	e := New(refdata.Default(), src)

	p, err := e.ResolvePricing(context.Background(), "Ram", "Ram 2500", 2024, 65000)
	require.NoError(t, err)

	assert.Equal(t, PriceSourceEstimated, p.Source)
	assert.InDelta(t, 56550, p.TrueDealerCost, 0.01)
}

func TestResolvePricingFloorsTrueCost(t *testing.T) {
	src := &fakeSource{
		invoice:    &catalog.InvoiceRecord{InvoicePrice: 500, Holdback: 400},
		dealerCash: 200,
	}
	e := New(refdata.Default(), src)

	p, err := e.ResolvePricing(context.Background(), "Ford", "F-150", 2025, 600)
	require.NoError(t, err)
	assert.Equal(t, minTrueDealerCost, p.TrueDealerCost)
}

func TestResolvePricingRejectsNonPositiveMSRP(t *testing.T) {
	e := New(refdata.Default(), nil)

	_, err := e.ResolvePricing(context.Background(), "Ram", "Ram 2500", 2024, 0)
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "msrp", invalid.Field)
}
