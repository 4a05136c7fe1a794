package quote

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/apperrors"
)

const (
	// lookupAttempts bounds how often a single provider call is retried on
	// transport faults before the resolver moves on to its fallback.
	lookupAttempts = 2

	retryBackoff = 200 * time.Millisecond
)

// Resolver turns ticker symbols into prices. It tries the last traded price
// first and falls back to the current/regular-market price. Provider faults
// never escape as hard errors: any failure, missing data, or non-positive
// price resolves to apperrors.ErrQuoteUnavailable, which callers treat as
// "keep the stored value". A zero price is not a valid market price.
//
// Every lookup runs under a per-call timeout so one bad symbol cannot stall
// a whole valuation pass.
type Resolver struct {
	client  Client
	timeout time.Duration
}

// NewResolver creates a resolver over the given client with a per-lookup
// timeout.
func NewResolver(client Client, timeout time.Duration) *Resolver {
	return &Resolver{
		client:  client,
		timeout: timeout,
	}
}

// Resolve returns the current price for a symbol or ErrQuoteUnavailable.
//
// Cancellation of the parent context is the one condition that propagates:
// an aborted operation must stop its in-flight lookups rather than degrade
// to stale values and persist a partial result.
func (r *Resolver) Resolve(ctx context.Context, symbol string) (Quote, error) {
	if symbol == "" {
		return Quote{}, apperrors.ErrQuoteUnavailable
	}

	price, err := r.lookup(ctx, symbol, r.client.LastTradedPrice)
	if err != nil || price <= 0 {
		price, err = r.lookup(ctx, symbol, r.client.RegularMarketPrice)
	}

	if ctx.Err() != nil {
		return Quote{}, ctx.Err()
	}
	if err != nil || price <= 0 {
		return Quote{}, apperrors.ErrQuoteUnavailable
	}

	return Quote{
		Symbol: symbol,
		Price:  price,
		At:     time.Now().UTC(),
	}, nil
}

// lookup runs a single provider call under the per-call timeout, retrying
// transient failures with constant backoff.
func (r *Resolver) lookup(ctx context.Context, symbol string, fn func(context.Context, string) (float64, error)) (float64, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var price float64
	backoff := retry.WithMaxRetries(lookupAttempts-1, retry.NewConstant(retryBackoff))

	err := retry.Do(callCtx, backoff, func(ctx context.Context) error {
		p, err := fn(ctx, symbol)
		if err != nil {
			return retry.RetryableError(err)
		}
		price = p
		return nil
	})
	if err != nil {
		return 0, err
	}

	return price, nil
}
