package ioc

import (
	"github.com/spf13/viper"

	"github.com/quantlark/oi-sentinel/internal/service/monitor"
)

func InitMonitorConfig() monitor.Config {
	return monitor.Config{
		Interval:          viper.GetDuration("monitor.interval"),
		Backoff:           viper.GetDuration("monitor.backoff"),
		OIThresholdPct:    viper.GetFloat64("monitor.oi_threshold"),
		PriceThresholdPct: viper.GetFloat64("monitor.price_threshold"),
		MaxConcurrent:     viper.GetInt("monitor.max_concurrent"),
		TopN:              viper.GetInt("monitor.top_n"),
		WebhookURL:        viper.GetString("notify.discord.webhook_url"),
	}
}
