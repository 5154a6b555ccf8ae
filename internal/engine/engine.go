// Package engine is the pricing and deal-intelligence core: true dealer
// cost resolution, the 5-factor deal score, offer targets, and the
// negotiation brief. Every method is a pure function over its inputs, the
// injected reference tables, and the (optional) catalog source: no hidden
// state, no logging, no clock reads.
package engine

import (
	"context"
	"time"

	"dealscout/internal/catalog"
	"dealscout/internal/refdata"
)

type Engine struct {
	tables  *refdata.Store
	catalog catalog.Source
}

// New builds an Engine over the given reference tables. src may be nil, in
// which case every invoice is estimated and dealer cash is 0.
func New(tables *refdata.Store, src catalog.Source) *Engine {
	return &Engine{tables: tables, catalog: src}
}

// Evaluate runs the full pipeline for one listing: score, offer targets,
// and negotiation brief.
func (e *Engine) Evaluate(ctx context.Context, l Listing, asOf time.Time) (Evaluation, error) {
	score, err := e.ScoreDeal(ctx, l, asOf)
	if err != nil {
		return Evaluation{}, err
	}
	offers := e.GenerateOffers(l, score.Pricing)
	brief := e.GenerateBrief(l, score.Pricing, score, offers)

	return Evaluation{
		Listing: l,
		AsOf:    asOf,
		Score:   score,
		Offers:  offers,
		Brief:   brief,
	}, nil
}
