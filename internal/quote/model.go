package quote

import "time"

// ChartResponse represents the raw JSON response structure from the Yahoo
// Finance chart API. Only the fields the resolver needs are mapped: the
// daily closes (last traded price) and the regular market price carried in
// the chart metadata (current price fallback).
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *string `json:"error"`
	} `json:"chart"`
}

// Quote is a resolved market price for a ticker symbol at a point in time.
type Quote struct {
	Symbol   string    `json:"symbol"`
	Price    float64   `json:"price"`
	Currency string    `json:"currency,omitempty"`
	At       time.Time `json:"at"`
}
