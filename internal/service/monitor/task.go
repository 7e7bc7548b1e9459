package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/quantlark/oi-sentinel/internal/schedule"
	"github.com/quantlark/oi-sentinel/internal/service/exchange"
)

// SurveillanceTask runs one full detection cycle: resolve the universe,
// take the start snapshot, wait the configured interval, take the end
// snapshot, detect anomalies and dispatch alerts.
type SurveillanceTask struct {
	symbolSvc  exchange.SymbolService
	marketSvc  exchange.MarketService
	assembler  *SnapshotAssembler
	detector   *AnomalyDetector
	dispatcher *AlertDispatcher

	interval time.Duration
	wait     func(ctx context.Context, d time.Duration) error
	now      func() time.Time
}

func NewSurveillanceTask(symbolSvc exchange.SymbolService, marketSvc exchange.MarketService,
	assembler *SnapshotAssembler, detector *AnomalyDetector, dispatcher *AlertDispatcher, cfg Config) schedule.Task {
	return &SurveillanceTask{
		symbolSvc:  symbolSvc,
		marketSvc:  marketSvc,
		assembler:  assembler,
		detector:   detector,
		dispatcher: dispatcher,
		interval:   cfg.Interval,
		wait:       sleepCtx,
		now:        time.Now,
	}
}

func (t *SurveillanceTask) Run(ctx context.Context) error {
	symbols := t.universe(ctx)
	funding := t.fundingRates(ctx)

	start, err := t.assembler.Assemble(ctx, symbols, funding, PhaseStart, t.now())
	if err != nil {
		return err
	}

	if err := t.wait(ctx, t.interval); err != nil {
		return err
	}

	// funding is deliberately not re-fetched, the start-of-cycle rates
	// cover the whole cycle
	end, err := t.assembler.Assemble(ctx, symbols, funding, PhaseEnd, t.now())
	if err != nil {
		return err
	}

	records := t.detector.Detect(symbols, start, end, funding)
	if err := t.dispatcher.Dispatch(ctx, records); err != nil {
		return err
	}

	slog.Info("cycle complete", "symbols", len(symbols), "anomalies", len(records))
	return nil
}

func (t *SurveillanceTask) Name() string {
	return "open interest surveillance task"
}

// universe degrades to an empty set on failure so the cycle keeps going.
func (t *SurveillanceTask) universe(ctx context.Context) []string {
	symbols, err := t.symbolSvc.EligibleSymbols(ctx)
	if err != nil {
		slog.Error("fail to resolve symbol universe", "error", err)
		return nil
	}
	return symbols
}

func (t *SurveillanceTask) fundingRates(ctx context.Context) map[string]float64 {
	rates, err := t.marketSvc.FundingRates(ctx)
	if err != nil {
		slog.Error("fail to fetch funding rates", "error", err)
		return map[string]float64{}
	}
	return rates
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
