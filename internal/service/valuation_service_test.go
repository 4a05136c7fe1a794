package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/service"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/testutil"
)

// TestValuationService_Valuate tests the pricing precedence rules.
//
// WHY: Valuation order is the core invariant of the engine: manual override
// beats quotes, quotes beat stored values, and provider failures degrade to
// the stored value instead of erroring.
func TestValuationService_Valuate(t *testing.T) {
	t.Run("leaves non-priced classes untouched", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithLastTraded("ACME", 5.0)
		svc := testutil.NewTestValuationService(t, client)

		asset := testutil.NewAsset().
			WithClass(model.ClassCash).
			WithValue(5000).
			Build()

		valued, err := svc.Valuate(context.Background(), asset)
		if err != nil {
			t.Fatalf("Valuate() returned unexpected error: %v", err)
		}

		if valued.Value != 5000 {
			t.Errorf("Expected caller-supplied value 5000, got %v", valued.Value)
		}
		if client.LastTradedCalls() != 0 {
			t.Error("Non-priced assets must not trigger quote lookups")
		}
	})

	t.Run("manual override wins without a lookup", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithLastTraded("ACME", 8.0)
		svc := testutil.NewTestValuationService(t, client)

		asset := testutil.NewAsset().
			WithClass(model.ClassEquity).
			WithSymbol("ACME").
			WithQuantity(10).
			WithManualOverride(100).
			Build()

		valued, err := svc.Valuate(context.Background(), asset)
		if err != nil {
			t.Fatalf("Valuate() returned unexpected error: %v", err)
		}

		if valued.Value != 100 {
			t.Errorf("Expected override value 100, got %v", valued.Value)
		}
		if client.LastTradedCalls() != 0 {
			t.Error("Override must skip the quote lookup entirely")
		}
	})

	t.Run("prices equity as quote times quantity", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithLastTraded("ACME", 5.0)
		svc := testutil.NewTestValuationService(t, client)

		asset := testutil.NewAsset().
			WithClass(model.ClassEquity).
			WithSymbol("ACME").
			WithQuantity(10).
			Build()

		valued, err := svc.Valuate(context.Background(), asset)
		if err != nil {
			t.Fatalf("Valuate() returned unexpected error: %v", err)
		}

		if valued.Value != 50.0 {
			t.Errorf("Expected 10 x 5.0 = 50.0, got %v", valued.Value)
		}
	})

	t.Run("keeps stored value when the quote is unavailable", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithError(errors.New("connection refused"))
		svc := testutil.NewTestValuationService(t, client)

		asset := testutil.NewAsset().
			WithClass(model.ClassEquity).
			WithSymbol("ACME").
			WithQuantity(10).
			WithValue(47.5).
			Build()

		valued, err := svc.Valuate(context.Background(), asset)
		if err != nil {
			t.Fatalf("Expected degradation to stale value, got error: %v", err)
		}

		if valued.Value != 47.5 {
			t.Errorf("Expected stored value 47.5 kept, got %v", valued.Value)
		}
	})

	t.Run("keeps asset without symbol or quantity unchanged", func(t *testing.T) {
		client := testutil.NewMockQuoteClient()
		svc := testutil.NewTestValuationService(t, client)

		asset := testutil.NewAsset().
			WithClass(model.ClassEquity).
			WithValue(12).
			Build()

		valued, err := svc.Valuate(context.Background(), asset)
		if err != nil {
			t.Fatalf("Valuate() returned unexpected error: %v", err)
		}
		if valued.Value != 12 {
			t.Errorf("Expected stored value 12 kept, got %v", valued.Value)
		}
		if client.LastTradedCalls() != 0 {
			t.Error("Assets without a symbol must not trigger lookups")
		}
	})

	t.Run("propagates cancellation", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithLastTraded("ACME", 5.0)
		svc := testutil.NewTestValuationService(t, client)

		asset := testutil.NewAsset().
			WithClass(model.ClassEquity).
			WithSymbol("ACME").
			WithQuantity(10).
			Build()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := svc.Valuate(ctx, asset); !errors.Is(err, context.Canceled) {
			t.Fatalf("Expected context.Canceled, got %v", err)
		}
	})
}

// TestValuationService_RefreshPrices tests the concurrent refresh pass.
func TestValuationService_RefreshPrices(t *testing.T) {
	t.Run("reprices a mixed portfolio", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().
			WithLastTraded("ACME", 5.0).
			WithLastTraded("IVV", 200.0)
		svc := testutil.NewTestValuationService(t, client)

		assets := []model.Asset{
			testutil.NewAsset().WithClass(model.ClassEquity).WithSymbol("ACME").WithQuantity(10).Build(),
			testutil.NewAsset().WithClass(model.ClassFund).WithSymbol("IVV").WithQuantity(2).Build(),
			testutil.NewAsset().WithClass(model.ClassEquity).WithSymbol("OVRD").WithQuantity(1).WithManualOverride(99).Build(),
			testutil.NewAsset().WithClass(model.ClassCash).WithValue(1000).Build(),
		}

		refreshed, err := svc.RefreshPrices(context.Background(), assets)
		if err != nil {
			t.Fatalf("RefreshPrices() returned unexpected error: %v", err)
		}

		want := []float64{50, 400, 99, 1000}
		for i, w := range want {
			if refreshed[i].Value != w {
				t.Errorf("Asset %d: expected value %v, got %v", i, w, refreshed[i].Value)
			}
		}

		// The overridden asset never reaches the provider
		if calls := client.LastTradedCalls(); calls != 2 {
			t.Errorf("Expected 2 lookups, got %d", calls)
		}
	})

	t.Run("does not modify the input slice", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithLastTraded("ACME", 5.0)
		svc := testutil.NewTestValuationService(t, client)

		assets := []model.Asset{
			testutil.NewAsset().WithClass(model.ClassEquity).WithSymbol("ACME").WithQuantity(10).WithValue(1).Build(),
		}

		if _, err := svc.RefreshPrices(context.Background(), assets); err != nil {
			t.Fatalf("RefreshPrices() returned unexpected error: %v", err)
		}

		if assets[0].Value != 1 {
			t.Errorf("Input slice was modified: value %v", assets[0].Value)
		}
	})

	t.Run("aborts the whole pass on cancellation", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithLastTraded("ACME", 5.0)
		svc := testutil.NewTestValuationService(t, client)

		assets := []model.Asset{
			testutil.NewAsset().WithClass(model.ClassEquity).WithSymbol("ACME").WithQuantity(10).Build(),
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := svc.RefreshPrices(ctx, assets); !errors.Is(err, context.Canceled) {
			t.Fatalf("Expected context.Canceled, got %v", err)
		}
	})
}

// TestAggregate tests per-class totals.
//
// WHY: Net worth must equal the sum of the four class totals computed in the
// same pass. The sum is pure and deterministic.
func TestAggregate(t *testing.T) {
	assets := []model.Asset{
		testutil.NewAsset().WithClass(model.ClassEquity).WithValue(50).Build(),
		testutil.NewAsset().WithClass(model.ClassEquity).WithValue(25).Build(),
		testutil.NewAsset().WithClass(model.ClassFund).WithValue(400).Build(),
		testutil.NewAsset().WithClass(model.ClassRetirement).WithValue(10000).Build(),
		testutil.NewAsset().WithClass(model.ClassCash).WithValue(1500).Build(),
	}

	totals := service.Aggregate(assets)

	if totals.Equity != 75 {
		t.Errorf("Expected equity total 75, got %v", totals.Equity)
	}
	if totals.Fund != 400 {
		t.Errorf("Expected fund total 400, got %v", totals.Fund)
	}
	if totals.Retirement != 10000 {
		t.Errorf("Expected retirement total 10000, got %v", totals.Retirement)
	}
	if totals.Cash != 1500 {
		t.Errorf("Expected cash total 1500, got %v", totals.Cash)
	}

	wantNetWorth := totals.Equity + totals.Fund + totals.Retirement + totals.Cash
	if totals.NetWorth != wantNetWorth {
		t.Errorf("Net worth %v does not equal sum of class totals %v", totals.NetWorth, wantNetWorth)
	}

	empty := service.Aggregate(nil)
	if empty.NetWorth != 0 {
		t.Errorf("Expected zero net worth for empty portfolio, got %v", empty.NetWorth)
	}
}
