package quote_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/quote"
)

// chartJSON builds a minimal chart API response body.
func chartJSON(regularMarketPrice float64, closes string) string {
	return fmt.Sprintf(`{
	  "chart": {
	    "result": [{
	      "meta": {"currency": "USD", "symbol": "ACME", "regularMarketPrice": %g},
	      "timestamp": [1700000000, 1700086400, 1700172800],
	      "indicators": {"quote": [{"close": [%s]}]}
	    }],
	    "error": null
	  }
	}`, regularMarketPrice, closes)
}

// TestFinanceClient tests chart API response handling against a stub server.
//
// WHY: The provider's responses are irregular: market holidays leave nil
// gaps in the close series, errors arrive inside a 200 body, and empty
// result sets are possible. Each case must map to a price or a clean error.
func TestFinanceClient(t *testing.T) {
	t.Run("LastTradedPrice returns the latest non-nil close", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, "/v8/finance/chart/ACME") {
				t.Errorf("Unexpected request path: %s", r.URL.Path)
			}
			// Latest entry is a market holiday gap; 102.5 is the last trade.
			fmt.Fprint(w, chartJSON(99.0, "101.0, 102.5, null"))
		}))
		defer server.Close()

		client := quote.NewFinanceClientWithBaseURL(server.URL)

		price, err := client.LastTradedPrice(context.Background(), "ACME")
		if err != nil {
			t.Fatalf("LastTradedPrice() returned unexpected error: %v", err)
		}
		if price != 102.5 {
			t.Errorf("Expected 102.5, got %v", price)
		}
	})

	t.Run("LastTradedPrice fails when every close is nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, chartJSON(99.0, "null, null"))
		}))
		defer server.Close()

		client := quote.NewFinanceClientWithBaseURL(server.URL)

		if _, err := client.LastTradedPrice(context.Background(), "ACME"); err == nil {
			t.Fatal("Expected error for all-nil close series")
		}
	})

	t.Run("RegularMarketPrice reads the chart metadata", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, chartJSON(87.25, "null"))
		}))
		defer server.Close()

		client := quote.NewFinanceClientWithBaseURL(server.URL)

		price, err := client.RegularMarketPrice(context.Background(), "ACME")
		if err != nil {
			t.Fatalf("RegularMarketPrice() returned unexpected error: %v", err)
		}
		if price != 87.25 {
			t.Errorf("Expected 87.25, got %v", price)
		}
	})

	t.Run("surfaces the provider error field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"chart": {"result": [], "error": "No data found, symbol may be delisted"}}`)
		}))
		defer server.Close()

		client := quote.NewFinanceClientWithBaseURL(server.URL)

		_, err := client.LastTradedPrice(context.Background(), "GONE")
		if err == nil || !strings.Contains(err.Error(), "delisted") {
			t.Fatalf("Expected provider error surfaced, got %v", err)
		}
	})

	t.Run("fails on an empty result set", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"chart": {"result": [], "error": null}}`)
		}))
		defer server.Close()

		client := quote.NewFinanceClientWithBaseURL(server.URL)

		if _, err := client.RegularMarketPrice(context.Background(), "ACME"); err == nil {
			t.Fatal("Expected error for empty result set")
		}
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html>rate limited</html>")
		}))
		defer server.Close()

		client := quote.NewFinanceClientWithBaseURL(server.URL)

		if _, err := client.LastTradedPrice(context.Background(), "ACME"); err == nil {
			t.Fatal("Expected error for malformed response body")
		}
	})
}
