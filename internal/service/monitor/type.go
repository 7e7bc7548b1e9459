package monitor

import (
	"time"
)

type Phase string

const (
	PhaseStart Phase = "start"
	PhaseEnd   Phase = "end"
)

// Snapshot 某一时刻全市场的价格与持仓量
// 构造完成后不再修改
type Snapshot struct {
	Phase        Phase
	Time         time.Time
	Prices       map[string]float64
	OpenInterest map[string]float64
}

// Valid reports whether the snapshot holds both a price and an open
// interest value for the symbol.
func (s Snapshot) Valid(symbol string) bool {
	if _, ok := s.Prices[symbol]; !ok {
		return false
	}
	_, ok := s.OpenInterest[symbol]
	return ok
}

type Direction string

const (
	DirectionBullish Direction = "bullish-accumulation"
	DirectionBearish Direction = "bearish-accumulation"
	DirectionFlat    Direction = "flat-accumulation"
)

// AnomalyRecord 持仓量异动信号, 仅在单个检测周期内存在
type AnomalyRecord struct {
	Symbol         string
	OIChangePct    float64
	PriceChangePct float64
	FundingRate    float64
	Direction      Direction
}

// Config 一个检测周期的全部可调参数
type Config struct {
	// Interval 两次快照之间的等待时长
	Interval time.Duration
	// Backoff 周期失败后的等待时长
	Backoff time.Duration
	// OIThresholdPct 持仓量涨幅阈值(百分比)
	OIThresholdPct float64
	// PriceThresholdPct 价格波动上限(百分比绝对值)
	PriceThresholdPct float64
	// MaxConcurrent 持仓量抓取的最大并发数
	MaxConcurrent int
	// TopN 单次通知携带的最大异动数量
	TopN int
	// WebhookURL 通知 webhook 地址
	WebhookURL string
}

func DefaultConfig() Config {
	return Config{
		Interval:          45 * time.Second,
		Backoff:           10 * time.Second,
		OIThresholdPct:    5,
		PriceThresholdPct: 1.2,
		MaxConcurrent:     15,
		TopN:              10,
	}
}
