package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/quantlark/oi-sentinel/internal/schedule"
	"github.com/quantlark/oi-sentinel/internal/service/exchange/binance"
	"github.com/quantlark/oi-sentinel/internal/service/monitor"
	"github.com/quantlark/oi-sentinel/internal/service/notification/discord"
	"github.com/quantlark/oi-sentinel/ioc"
)

func initViper() {
	// --config=./config/config.yaml
	file := pflag.String("config", "", "specify config file")
	pflag.Parse()

	// local .env may carry OI_SENTINEL_NOTIFY_DISCORD_WEBHOOK_URL etc.
	_ = godotenv.Load()

	viper.SetDefault("monitor.interval", "45s")
	viper.SetDefault("monitor.backoff", "10s")
	viper.SetDefault("monitor.oi_threshold", 5.0)
	viper.SetDefault("monitor.price_threshold", 1.2)
	viper.SetDefault("monitor.max_concurrent", 15)
	viper.SetDefault("monitor.top_n", 10)
	viper.SetDefault("history.driver", "csv")
	viper.SetDefault("history.path", "oi_history.csv")
	viper.SetDefault("db.dsn", "oi_sentinel.db")

	viper.SetEnvPrefix("OI_SENTINEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if *file != "" {
		viper.SetConfigFile(*file)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %s \n", err))
		}
	}
}

func main() {
	initViper()

	cfg := ioc.InitMonitorConfig()
	cli := ioc.InitBinanceFuturesCli()
	history := ioc.InitHistoryRepo()

	symbolSvc := binance.NewSymbolService(cli)
	marketSvc := binance.NewMarketService(cli)

	collector := monitor.NewOpenInterestCollector(marketSvc, cfg.MaxConcurrent)
	assembler := monitor.NewSnapshotAssembler(marketSvc, collector, history)
	detector := monitor.NewAnomalyDetector(cfg)
	dispatcher := monitor.NewAlertDispatcher(discord.NewWebhookService(), cfg)

	task := monitor.NewSurveillanceTask(symbolSvc, marketSvc, assembler, detector, dispatcher, cfg)
	runner := schedule.NewRunner(task, cfg.Backoff)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("open interest monitor starting", "interval", cfg.Interval)
	runner.Run(ctx)
	slog.Info("open interest monitor stopped")
}
