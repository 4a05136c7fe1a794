package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/quote"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/repository"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/service"
)

// MakeID generates a unique identifier for test entities.
func MakeID() string {
	return uuid.New().String()
}

// FloatPtr returns a pointer to the given float64. Request and update types
// use pointer fields to distinguish "absent" from zero.
func FloatPtr(v float64) *float64 {
	return &v
}

// StringPtr returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}

// NewTestValuationService builds a valuation service over the given mock
// client with a short lookup timeout.
func NewTestValuationService(t *testing.T, client quote.Client) *service.ValuationService {
	t.Helper()

	resolver := quote.NewResolver(client, time.Second)
	return service.NewValuationService(resolver, 2)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB, client quote.Client) *service.PortfolioService {
	t.Helper()

	repo := repository.NewPortfolioRepository(db)
	return service.NewPortfolioService(repo, NewTestValuationService(t, client))
}

func NewTestGoalService(t *testing.T, db *sql.DB) *service.GoalService {
	t.Helper()

	repo := repository.NewPortfolioRepository(db)
	return service.NewGoalService(repo)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB, client quote.Client) *service.SnapshotService {
	t.Helper()

	repo := repository.NewPortfolioRepository(db)
	return service.NewSnapshotService(repo, NewTestValuationService(t, client))
}
