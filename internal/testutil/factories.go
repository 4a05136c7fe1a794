package testutil

import (
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
)

// AssetBuilder provides a fluent interface for creating test assets.
// Assets live inside the portfolio document, so Build returns a value
// rather than inserting a row.
//
// Example usage:
//
//	asset := testutil.NewAsset().
//	    WithClass(model.ClassEquity).
//	    WithSymbol("ACME").
//	    WithQuantity(10).
//	    Build()
type AssetBuilder struct {
	asset model.Asset
}

// NewAsset creates an AssetBuilder with sensible defaults: a cash asset
// holding 1000.
func NewAsset() *AssetBuilder {
	return &AssetBuilder{
		asset: model.Asset{
			ID:    MakeID(),
			Name:  "Test Asset",
			Class: model.ClassCash,
			Value: 1000,
		},
	}
}

// WithID sets a custom ID.
func (b *AssetBuilder) WithID(id string) *AssetBuilder {
	b.asset.ID = id
	return b
}

// WithName sets a custom name.
func (b *AssetBuilder) WithName(name string) *AssetBuilder {
	b.asset.Name = name
	return b
}

// WithClass sets the asset class.
func (b *AssetBuilder) WithClass(class model.AssetClass) *AssetBuilder {
	b.asset.Class = class
	return b
}

// WithSymbol sets the ticker symbol.
func (b *AssetBuilder) WithSymbol(symbol string) *AssetBuilder {
	b.asset.Symbol = symbol
	return b
}

// WithQuantity sets the held quantity.
func (b *AssetBuilder) WithQuantity(qty float64) *AssetBuilder {
	b.asset.Quantity = &qty
	return b
}

// WithValue sets the stored value.
func (b *AssetBuilder) WithValue(value float64) *AssetBuilder {
	b.asset.Value = value
	return b
}

// WithManualOverride sets a manual valuation override.
func (b *AssetBuilder) WithManualOverride(value float64) *AssetBuilder {
	b.asset.ManualOverride = &value
	return b
}

// Build returns the constructed asset.
func (b *AssetBuilder) Build() model.Asset {
	return b.asset
}

// GoalBuilder provides a fluent interface for creating test savings goals.
type GoalBuilder struct {
	goal model.SavingsGoal
}

// NewGoal creates a GoalBuilder with sensible defaults.
func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		goal: model.SavingsGoal{
			ID:           MakeID(),
			Name:         "Test Goal",
			TargetAmount: 10000,
		},
	}
}

// WithID sets a custom ID.
func (b *GoalBuilder) WithID(id string) *GoalBuilder {
	b.goal.ID = id
	return b
}

// WithName sets a custom name.
func (b *GoalBuilder) WithName(name string) *GoalBuilder {
	b.goal.Name = name
	return b
}

// WithTarget sets the target amount.
func (b *GoalBuilder) WithTarget(amount float64) *GoalBuilder {
	b.goal.TargetAmount = amount
	return b
}

// WithCurrent sets the current amount.
func (b *GoalBuilder) WithCurrent(amount float64) *GoalBuilder {
	b.goal.CurrentAmount = amount
	return b
}

// WithDeadline sets the deadline (YYYY-MM-DD).
func (b *GoalBuilder) WithDeadline(deadline string) *GoalBuilder {
	b.goal.Deadline = deadline
	return b
}

// Build returns the constructed goal.
func (b *GoalBuilder) Build() model.SavingsGoal {
	return b.goal
}
