package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client is the market data lookup surface the resolver depends on.
// Implementations must be safe for concurrent use.
type Client interface {
	// LastTradedPrice returns the most recent daily closing price for the
	// symbol.
	LastTradedPrice(ctx context.Context, symbol string) (float64, error)

	// RegularMarketPrice returns the current/regular-market price for the
	// symbol, used as a fallback when no traded close is available.
	RegularMarketPrice(ctx context.Context, symbol string) (float64, error)
}

// FinanceClient fetches prices from the Yahoo Finance chart API.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a Yahoo Finance client with default HTTP settings.
// Request deadlines are supplied per call through the context, so the
// underlying http.Client carries no timeout of its own.
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
	}
}

// NewFinanceClientWithBaseURL creates a client against a non-default
// endpoint. Used by tests to point at a local stub server.
func NewFinanceClientWithBaseURL(baseURL string) *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// LastTradedPrice fetches a 5-day daily chart and returns the latest
// non-nil close. Weekends and market holidays produce gaps, which is why a
// single-day range is not enough here.
func (c *FinanceClient) LastTradedPrice(ctx context.Context, symbol string) (float64, error) {
	resp, err := c.queryChart(ctx, symbol, "5d")
	if err != nil {
		return 0, err
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return 0, fmt.Errorf("no quote data returned for symbol %s", symbol)
	}

	closes := result.Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil {
			return *closes[i], nil
		}
	}

	return 0, fmt.Errorf("no close prices returned for symbol %s", symbol)
}

// RegularMarketPrice fetches a single-day chart and returns the regular
// market price from the chart metadata.
func (c *FinanceClient) RegularMarketPrice(ctx context.Context, symbol string) (float64, error) {
	resp, err := c.queryChart(ctx, symbol, "1d")
	if err != nil {
		return 0, err
	}

	return resp.Chart.Result[0].Meta.RegularMarketPrice, nil
}

// queryChart executes a chart request and performs the common response
// checks: HTTP transport errors, JSON decoding, the Yahoo error field, and
// an empty result set.
func (c *FinanceClient) queryChart(ctx context.Context, symbol, rng string) (ChartResponse, error) {
	chartURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s", c.baseURL, url.PathEscape(symbol), rng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, chartURL, nil)
	if err != nil {
		return ChartResponse{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ChartResponse{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChartResponse{}, err
	}

	var response ChartResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return ChartResponse{}, err
	}

	if response.Chart.Error != nil {
		return ChartResponse{}, fmt.Errorf("yahoo error: %s", *response.Chart.Error)
	}

	if len(response.Chart.Result) == 0 {
		return ChartResponse{}, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return response, nil
}
