package model

import "time"

// NetWorthSnapshot is an immutable, timestamped record of aggregated net
// worth. NetWorth always equals the exact sum of the four class totals as
// computed by the valuation pass that produced the snapshot.
type NetWorthSnapshot struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"` // creation time, UTC
	TotalEquity     float64   `json:"totalEquity"`
	TotalFund       float64   `json:"totalFund"`
	TotalRetirement float64   `json:"totalRetirement"`
	TotalCash       float64   `json:"totalCash"`
	NetWorth        float64   `json:"netWorth"`
}

// Totals holds per-class valuation sums for a portfolio.
type Totals struct {
	Equity     float64 `json:"equity"`
	Fund       float64 `json:"fund"`
	Retirement float64 `json:"retirement"`
	Cash       float64 `json:"cash"`
	NetWorth   float64 `json:"netWorth"`
}
