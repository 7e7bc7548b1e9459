package ioc

import (
	"net/http"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/spf13/viper"
)

func InitBinanceFuturesCli() *futures.Client {
	type Config struct {
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("exchange.binance", &cfg); err != nil {
		panic(err)
	}

	cli := futures.NewClient(cfg.ApiKey, cfg.ApiSecret)
	// a hung request must not stall the whole cycle
	cli.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	return cli
}
