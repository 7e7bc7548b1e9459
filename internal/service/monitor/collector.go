package monitor

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/quantlark/oi-sentinel/internal/service/exchange"
)

// OpenInterestCollector fans per-symbol open interest requests out under a
// fixed concurrency cap and fans the results back into one mapping.
type OpenInterestCollector struct {
	marketSvc exchange.MarketService
	limit     int
}

func NewOpenInterestCollector(marketSvc exchange.MarketService, limit int) *OpenInterestCollector {
	if limit <= 0 {
		limit = 1
	}
	return &OpenInterestCollector{
		marketSvc: marketSvc,
		limit:     limit,
	}
}

// Collect resolves open interest for every symbol, success or not, before
// returning. A failed fetch leaves its symbol absent from the result and
// never aborts the rest of the batch.
func (c *OpenInterestCollector) Collect(ctx context.Context, symbols []string) map[string]float64 {
	type result struct {
		oi float64
		ok bool
	}
	results := make([]result, len(symbols))

	var g errgroup.Group
	g.SetLimit(c.limit)
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			oi, err := c.marketSvc.OpenInterest(ctx, symbol)
			if err != nil {
				slog.Warn("fail to fetch open interest", "symbol", symbol, "error", err)
				return nil
			}
			results[i] = result{oi: oi, ok: true}
			return nil
		})
	}
	// workers swallow their own errors, Wait only acts as the barrier
	_ = g.Wait()

	out := make(map[string]float64, len(symbols))
	for i, symbol := range symbols {
		if results[i].ok {
			out[symbol] = results[i].oi
		}
	}
	return out
}
