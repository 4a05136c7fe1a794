package testutil

import (
	"context"
	"sync"
)

// MockQuoteClient is a mock implementation of quote.Client for testing.
// It returns configured per-symbol prices instead of calling the market data
// provider. Safe for concurrent use; refresh passes fan lookups out across
// goroutines.
type MockQuoteClient struct {
	mu sync.Mutex

	// lastTraded maps symbols to the price returned by LastTradedPrice.
	lastTraded map[string]float64
	// regular maps symbols to the price returned by RegularMarketPrice.
	regular map[string]float64
	// err, when set, is returned by every lookup.
	err error

	lastTradedCalls int
	regularCalls    int
}

// NewMockQuoteClient creates a mock client with no configured prices.
// Unconfigured symbols resolve to a zero price, which the resolver treats
// as no usable quote.
func NewMockQuoteClient() *MockQuoteClient {
	return &MockQuoteClient{
		lastTraded: make(map[string]float64),
		regular:    make(map[string]float64),
	}
}

// WithLastTraded configures the last traded price for a symbol.
func (m *MockQuoteClient) WithLastTraded(symbol string, price float64) *MockQuoteClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastTraded[symbol] = price
	return m
}

// WithRegularMarket configures the regular market price for a symbol.
func (m *MockQuoteClient) WithRegularMarket(symbol string, price float64) *MockQuoteClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regular[symbol] = price
	return m
}

// WithError configures the mock to fail every lookup with err.
func (m *MockQuoteClient) WithError(err error) *MockQuoteClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// LastTradedPrice returns the configured last traded price for the symbol.
func (m *MockQuoteClient) LastTradedPrice(_ context.Context, symbol string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastTradedCalls++
	if m.err != nil {
		return 0, m.err
	}
	return m.lastTraded[symbol], nil
}

// RegularMarketPrice returns the configured regular market price for the symbol.
func (m *MockQuoteClient) RegularMarketPrice(_ context.Context, symbol string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regularCalls++
	if m.err != nil {
		return 0, m.err
	}
	return m.regular[symbol], nil
}

// LastTradedCalls reports how many times LastTradedPrice was called.
func (m *MockQuoteClient) LastTradedCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastTradedCalls
}

// RegularCalls reports how many times RegularMarketPrice was called.
func (m *MockQuoteClient) RegularCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regularCalls
}
