package exchange

import (
	"context"
)

// SymbolService resolves the tradable symbol universe of an exchange.
type SymbolService interface {
	// EligibleSymbols returns the identifiers of every contract that is
	// actively trading and eligible for monitoring.
	EligibleSymbols(ctx context.Context) ([]string, error)
}

// MarketService exposes the market data endpoints the monitor needs.
type MarketService interface {
	// BulkPrices returns the latest price for every listed symbol.
	BulkPrices(ctx context.Context) (map[string]float64, error)
	// FundingRates returns the last funding rate for every listed symbol.
	FundingRates(ctx context.Context) (map[string]float64, error)
	// OpenInterest returns the current open interest of a single symbol.
	OpenInterest(ctx context.Context, symbol string) (float64, error)
}
