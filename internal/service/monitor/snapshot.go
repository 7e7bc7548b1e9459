package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/quantlark/oi-sentinel/internal/entity"
	"github.com/quantlark/oi-sentinel/internal/repo"
	"github.com/quantlark/oi-sentinel/internal/service/exchange"
)

// SnapshotAssembler builds one timestamped snapshot from the bulk price
// feed and the bounded open interest collector, then appends the rows that
// carry both values to the history log.
type SnapshotAssembler struct {
	marketSvc exchange.MarketService
	collector *OpenInterestCollector
	history   repo.HistoryRepo
}

func NewSnapshotAssembler(marketSvc exchange.MarketService, collector *OpenInterestCollector, history repo.HistoryRepo) *SnapshotAssembler {
	return &SnapshotAssembler{
		marketSvc: marketSvc,
		collector: collector,
		history:   history,
	}
}

// Assemble degrades on fetch failures (empty price map, absent open
// interest) but treats a history write failure as a cycle failure.
func (a *SnapshotAssembler) Assemble(ctx context.Context, symbols []string, funding map[string]float64, phase Phase, now time.Time) (Snapshot, error) {
	prices, err := a.marketSvc.BulkPrices(ctx)
	if err != nil {
		slog.Error("fail to fetch bulk prices", "phase", phase, "error", err)
		prices = map[string]float64{}
	}

	snapshot := Snapshot{
		Phase:        phase,
		Time:         now,
		Prices:       prices,
		OpenInterest: a.collector.Collect(ctx, symbols),
	}

	rows := make([]entity.SnapshotRow, 0, len(symbols))
	for _, symbol := range symbols {
		if !snapshot.Valid(symbol) {
			continue
		}
		rows = append(rows, entity.SnapshotRow{
			Symbol:       symbol,
			Price:        snapshot.Prices[symbol],
			OpenInterest: snapshot.OpenInterest[symbol],
			FundingRate:  funding[symbol],
			Phase:        string(phase),
			Timestamp:    now,
		})
	}
	if err := a.history.Append(ctx, rows); err != nil {
		return Snapshot{}, err
	}
	return snapshot, nil
}
