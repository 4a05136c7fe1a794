package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/apperrors"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/quote"
)

// QuoteResolver is the lookup surface the valuator depends on. Satisfied by
// quote.Resolver; tests substitute their own.
type QuoteResolver interface {
	Resolve(ctx context.Context, symbol string) (quote.Quote, error)
}

// ValuationService computes current asset values. Pricing rules, in
// precedence order:
//
//  1. Non-priced classes (retirement/cash) keep their caller-supplied value.
//  2. A manual override wins unconditionally; no quote lookup is performed.
//  3. A resolved quote with a known quantity yields price x quantity.
//  4. Otherwise the previously stored value stands (degrade to stale, not
//     an error).
type ValuationService struct {
	resolver    QuoteResolver
	concurrency int
}

// NewValuationService creates a ValuationService. Concurrency caps how many
// quote lookups a refresh pass runs at once.
func NewValuationService(resolver QuoteResolver, concurrency int) *ValuationService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ValuationService{
		resolver:    resolver,
		concurrency: concurrency,
	}
}

// Valuate applies the pricing rules to a single asset and returns the
// updated copy. Provider failures degrade silently to the stored value; the
// only error returned is cancellation of the caller's context, which must
// abort the surrounding operation instead of persisting partial results.
func (s *ValuationService) Valuate(ctx context.Context, asset model.Asset) (model.Asset, error) {
	if !asset.Class.Priced() {
		return asset, nil
	}

	if asset.ManualOverride != nil {
		asset.Value = *asset.ManualOverride
		return asset, nil
	}

	if asset.Symbol == "" || asset.Quantity == nil {
		return asset, nil
	}

	q, err := s.resolver.Resolve(ctx, asset.Symbol)
	if err != nil {
		if !errors.Is(err, apperrors.ErrQuoteUnavailable) {
			return model.Asset{}, err
		}
		log.Printf("Quote unavailable for %s, keeping stored value %.2f", asset.Symbol, asset.Value)
		return asset, nil
	}

	asset.Value = q.Price * *asset.Quantity
	return asset, nil
}

// RefreshPrices runs a valuation pass over every asset, fanning quote
// lookups out with bounded concurrency and fanning in before returning.
// Overridden and non-priced assets never hit the provider. The input slice
// is not modified.
func (s *ValuationService) RefreshPrices(ctx context.Context, assets []model.Asset) ([]model.Asset, error) {
	out := make([]model.Asset, len(assets))
	copy(out, assets)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range out {
		if !out[i].Class.Priced() {
			continue
		}
		if out[i].ManualOverride != nil {
			out[i].Value = *out[i].ManualOverride
			continue
		}

		i := i
		g.Go(func() error {
			updated, err := s.Valuate(gctx, out[i])
			if err != nil {
				return err
			}
			out[i] = updated
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Aggregate sums asset values into per-class totals and the net worth
// figure. Pure summation over the current value field; deterministic, no
// side effects.
func Aggregate(assets []model.Asset) model.Totals {
	var t model.Totals
	for _, a := range assets {
		switch a.Class {
		case model.ClassEquity:
			t.Equity += a.Value
		case model.ClassFund:
			t.Fund += a.Value
		case model.ClassRetirement:
			t.Retirement += a.Value
		case model.ClassCash:
			t.Cash += a.Value
		}
	}
	t.NetWorth = t.Equity + t.Fund + t.Retirement + t.Cash
	return t
}
