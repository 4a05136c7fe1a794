package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/apperrors"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/repository"
)

// PortfolioService handles portfolio and asset operations. Every mutating
// operation runs a full load-mutate-save cycle over the aggregate; reads
// reprice in memory only and never write.
type PortfolioService struct {
	repo      *repository.PortfolioRepository
	valuation *ValuationService
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(repo *repository.PortfolioRepository, valuation *ValuationService) *PortfolioService {
	return &PortfolioService{
		repo:      repo,
		valuation: valuation,
	}
}

// AssetUpdate carries the partial fields of an asset update. Nil fields are
// left unchanged. ClearManualOverride removes an existing override so quote
// pricing resumes; it takes precedence over ManualOverride.
type AssetUpdate struct {
	Name                *string
	Class               *model.AssetClass
	Symbol              *string
	Quantity            *float64
	Value               *float64
	ManualOverride      *float64
	ClearManualOverride bool
}

// GetPortfolio loads the aggregate and reprices every non-overridden
// equity/fund asset, returning the portfolio together with its per-class
// totals. The refreshed values are not persisted; the next snapshot does
// that as part of its own pass.
func (s *PortfolioService) GetPortfolio(ctx context.Context, userID string) (*model.Portfolio, model.Totals, error) {
	p, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, model.Totals{}, err
	}

	refreshed, err := s.valuation.RefreshPrices(ctx, p.Assets)
	if err != nil {
		return nil, model.Totals{}, err
	}
	p.Assets = refreshed

	return p, Aggregate(refreshed), nil
}

// AddAsset assigns a fresh id, computes the initial value per the pricing
// rules, and appends the asset to the aggregate.
func (s *PortfolioService) AddAsset(ctx context.Context, userID string, asset model.Asset) (model.Asset, error) {
	asset.ID = uuid.New().String()

	valued, err := s.valuation.Valuate(ctx, asset)
	if err != nil {
		return model.Asset{}, err
	}

	_, err = mutatePortfolio(ctx, s.repo, userID, func(p *model.Portfolio) error {
		p.Assets = append(p.Assets, valued)
		return nil
	})
	if err != nil {
		return model.Asset{}, err
	}

	return valued, nil
}

// UpdateAsset applies a partial update to an existing asset and recomputes
// its value: an override wins, a resolvable quote reprices, a supplied value
// is taken for caller-valued assets, and otherwise the stored value stands.
// Returns apperrors.ErrAssetNotFound for an unknown id.
func (s *PortfolioService) UpdateAsset(ctx context.Context, userID, assetID string, update AssetUpdate) (model.Asset, error) {
	var updated model.Asset

	_, err := mutatePortfolio(ctx, s.repo, userID, func(p *model.Portfolio) error {
		i, ok := p.FindAsset(assetID)
		if !ok {
			return apperrors.ErrAssetNotFound
		}

		asset := p.Assets[i]
		if update.Name != nil {
			asset.Name = *update.Name
		}
		if update.Class != nil {
			asset.Class = *update.Class
		}
		if update.Symbol != nil {
			asset.Symbol = *update.Symbol
		}
		if update.Quantity != nil {
			asset.Quantity = update.Quantity
		}
		if update.ClearManualOverride {
			asset.ManualOverride = nil
		} else if update.ManualOverride != nil {
			asset.ManualOverride = update.ManualOverride
		}

		revalued, err := s.valuation.Valuate(ctx, asset)
		if err != nil {
			return err
		}

		// A caller-supplied value only applies where the pricing rules did
		// not: no override, and no quote-driven valuation path.
		quoteDriven := asset.Class.Priced() && asset.Symbol != "" && asset.Quantity != nil
		if update.Value != nil && asset.ManualOverride == nil && !quoteDriven {
			revalued.Value = *update.Value
		}

		p.Assets[i] = revalued
		updated = revalued
		return nil
	})
	if err != nil {
		return model.Asset{}, err
	}

	return updated, nil
}

// DeleteAsset removes an asset from the aggregate. Returns
// apperrors.ErrAssetNotFound for an unknown id.
func (s *PortfolioService) DeleteAsset(ctx context.Context, userID, assetID string) error {
	_, err := mutatePortfolio(ctx, s.repo, userID, func(p *model.Portfolio) error {
		i, ok := p.FindAsset(assetID)
		if !ok {
			return apperrors.ErrAssetNotFound
		}
		p.Assets = append(p.Assets[:i], p.Assets[i+1:]...)
		return nil
	})
	return err
}
