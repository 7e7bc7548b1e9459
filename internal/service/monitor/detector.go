package monitor

import (
	"math"

	"github.com/quantlark/oi-sentinel/pkg/percentx"
)

// directionBand 方向判定边界(百分比), 恰好落在边界上视为横盘
const directionBand = 0.3

// AnomalyDetector flags symbols whose open interest grew past the
// threshold while price stayed inside the flat band.
type AnomalyDetector struct {
	oiThresholdPct    float64
	priceThresholdPct float64
}

func NewAnomalyDetector(cfg Config) *AnomalyDetector {
	return &AnomalyDetector{
		oiThresholdPct:    cfg.OIThresholdPct,
		priceThresholdPct: cfg.PriceThresholdPct,
	}
}

// Detect compares two consecutive snapshots of the same universe. A symbol
// missing a price or an open interest value in either snapshot is skipped,
// as is a symbol whose previous value is zero (no percentage is defined).
func (d *AnomalyDetector) Detect(symbols []string, prev, curr Snapshot, funding map[string]float64) []AnomalyRecord {
	var records []AnomalyRecord
	for _, symbol := range symbols {
		if !prev.Valid(symbol) || !curr.Valid(symbol) {
			continue
		}

		oiChg, ok := percentx.Change(prev.OpenInterest[symbol], curr.OpenInterest[symbol])
		if !ok {
			continue
		}
		prcChg, ok := percentx.Change(prev.Prices[symbol], curr.Prices[symbol])
		if !ok {
			continue
		}

		if oiChg > d.oiThresholdPct && math.Abs(prcChg) < d.priceThresholdPct {
			records = append(records, AnomalyRecord{
				Symbol:         symbol,
				OIChangePct:    oiChg,
				PriceChangePct: prcChg,
				FundingRate:    funding[symbol],
				Direction:      classify(prcChg),
			})
		}
	}
	return records
}

func classify(priceChangePct float64) Direction {
	switch {
	case priceChangePct > directionBand:
		return DirectionBullish
	case priceChangePct < -directionBand:
		return DirectionBearish
	default:
		return DirectionFlat
	}
}
