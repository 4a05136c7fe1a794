package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/repository"
)

// SnapshotService orchestrates full re-valuation passes and maintains the
// bounded net worth history.
type SnapshotService struct {
	repo      *repository.PortfolioRepository
	valuation *ValuationService
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(repo *repository.PortfolioRepository, valuation *ValuationService) *SnapshotService {
	return &SnapshotService{
		repo:      repo,
		valuation: valuation,
	}
}

// CreateSnapshot runs a fresh pricing pass over every non-overridden
// equity/fund asset (cached recency is ignored; each call re-fetches
// quotes), aggregates the result, and appends a snapshot stamped with the
// current UTC time. History is trimmed to the retention cap, oldest first.
// The refreshed asset values and the new history are persisted together in
// one save.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, userID string) (model.NetWorthSnapshot, error) {
	var snapshot model.NetWorthSnapshot

	_, err := mutatePortfolio(ctx, s.repo, userID, func(p *model.Portfolio) error {
		refreshed, err := s.valuation.RefreshPrices(ctx, p.Assets)
		if err != nil {
			return err
		}
		p.Assets = refreshed

		totals := Aggregate(refreshed)
		snapshot = model.NetWorthSnapshot{
			ID:              uuid.New().String(),
			Timestamp:       time.Now().UTC(),
			TotalEquity:     totals.Equity,
			TotalFund:       totals.Fund,
			TotalRetirement: totals.Retirement,
			TotalCash:       totals.Cash,
			NetWorth:        totals.NetWorth,
		}
		p.AppendSnapshot(snapshot)
		return nil
	})
	if err != nil {
		return model.NetWorthSnapshot{}, err
	}

	return snapshot, nil
}

// SnapshotAllUsers creates a snapshot for every known portfolio. Used by
// the optional scheduler in cmd/server; the engine itself stays
// caller-triggered.
func (s *SnapshotService) SnapshotAllUsers(ctx context.Context) error {
	userIDs, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return err
	}

	for _, userID := range userIDs {
		if _, err := s.CreateSnapshot(ctx, userID); err != nil {
			return err
		}
	}

	return nil
}
