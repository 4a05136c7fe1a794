package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAssetNotFound indicates that an asset with the given ID is not part
	// of the portfolio.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrGoalNotFound indicates that a savings goal with the given ID is not
	// part of the portfolio.
	ErrGoalNotFound = errors.New("savings goal not found")
)

// Business logic errors represent validation failures or constraint
// violations.
var (
	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// Recoverable and infrastructure errors.
var (
	// ErrQuoteUnavailable indicates the market data provider returned no
	// usable price for a symbol (failure, no data, or a zero price). It is
	// always recoverable: the valuator degrades to the stored value.
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrVersionConflict indicates the portfolio document changed between
	// load and save. The mutation cycle should be retried against fresh
	// state.
	ErrVersionConflict = errors.New("portfolio was modified concurrently")
)
