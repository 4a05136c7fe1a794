package service

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/apperrors"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/repository"
)

// mutationAttempts bounds how often a load-mutate-save cycle is replayed
// when the aggregate moves underneath it.
const mutationAttempts = 3

// mutatePortfolio runs one load-mutate-save cycle against the aggregate.
// Version conflicts replay the whole cycle against fresh state with backoff,
// so a lost update can never be silently overwritten. Any other error from
// loading, mutating, or saving aborts immediately.
func mutatePortfolio(ctx context.Context, repo *repository.PortfolioRepository, userID string, mutate func(*model.Portfolio) error) (*model.Portfolio, error) {
	var result *model.Portfolio

	backoff := retry.WithMaxRetries(mutationAttempts-1, retry.NewFibonacci(50*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := repo.Load(ctx, userID)
		if err != nil {
			return err
		}

		if err := mutate(p); err != nil {
			return err
		}

		if err := repo.Save(ctx, p); err != nil {
			if errors.Is(err, apperrors.ErrVersionConflict) {
				return retry.RetryableError(err)
			}
			return err
		}

		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
