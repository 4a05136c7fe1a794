package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/api/handlers"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/testutil"
)

// TestPortfolioHandler_GetPortfolio tests the portfolio endpoint.
//
// WHY: The portfolio response is the primary read surface: it must carry
// repriced assets and totals that agree with them.
func TestPortfolioHandler_GetPortfolio(t *testing.T) {
	t.Run("returns the repriced portfolio with totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		client := testutil.NewMockQuoteClient().WithLastTraded("ACME", 5.0)
		svc := testutil.NewTestPortfolioService(t, db, client)
		handler := handlers.NewPortfolioHandler(svc)

		_, err := svc.AddAsset(context.Background(), model.DefaultUserID, testutil.NewAsset().
			WithClass(model.ClassEquity).
			WithSymbol("ACME").
			WithQuantity(10).
			Build())
		if err != nil {
			t.Fatalf("AddAsset() returned unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio", nil)
		rec := httptest.NewRecorder()

		handler.GetPortfolio(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body handlers.PortfolioResponse
		testutil.DecodeJSON(t, rec, &body)

		if len(body.Portfolio.Assets) != 1 {
			t.Fatalf("Expected 1 asset, got %d", len(body.Portfolio.Assets))
		}
		if body.Portfolio.Assets[0].Value != 50 {
			t.Errorf("Expected repriced value 50, got %v", body.Portfolio.Assets[0].Value)
		}
		if body.Totals.Equity != 50 || body.Totals.NetWorth != 50 {
			t.Errorf("Expected totals to match assets, got %+v", body.Totals)
		}
	})

	t.Run("returns an empty portfolio for a fresh tenant", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(testutil.NewTestPortfolioService(t, db, testutil.NewMockQuoteClient()))

		req := httptest.NewRequest(http.MethodGet, "/api/portfolio?user_id=carol", nil)
		rec := httptest.NewRecorder()

		handler.GetPortfolio(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var body handlers.PortfolioResponse
		testutil.DecodeJSON(t, rec, &body)

		if body.Portfolio.UserID != "carol" {
			t.Errorf("Expected tenant carol, got %s", body.Portfolio.UserID)
		}
		if len(body.Portfolio.Assets) != 0 {
			t.Errorf("Expected empty portfolio, got %d assets", len(body.Portfolio.Assets))
		}
	})
}
