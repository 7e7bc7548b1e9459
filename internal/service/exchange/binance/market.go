package binance

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/adshao/go-binance/v2/futures"

	"github.com/quantlark/oi-sentinel/internal/service/exchange"
)

var _ exchange.MarketService = (*MarketService)(nil)

type MarketService struct {
	cli *futures.Client
}

func NewMarketService(cli *futures.Client) *MarketService {
	return &MarketService{cli: cli}
}

func (m *MarketService) BulkPrices(ctx context.Context) (map[string]float64, error) {
	prices, err := m.cli.NewListPricesService().Do(ctx)
	if err != nil {
		return nil, err
	}

	res := make(map[string]float64, len(prices))
	for _, p := range prices {
		price, err := strconv.ParseFloat(p.Price, 64)
		if err != nil {
			slog.Error("fail to parse price", "symbol", p.Symbol, "price", p.Price, "error", err)
			continue
		}
		res[p.Symbol] = price
	}
	return res, nil
}

func (m *MarketService) FundingRates(ctx context.Context) (map[string]float64, error) {
	indexes, err := m.cli.NewPremiumIndexService().Do(ctx)
	if err != nil {
		return nil, err
	}

	res := make(map[string]float64, len(indexes))
	for _, idx := range indexes {
		if idx.LastFundingRate == "" {
			continue
		}
		rate, err := strconv.ParseFloat(idx.LastFundingRate, 64)
		if err != nil {
			slog.Error("fail to parse funding rate", "symbol", idx.Symbol, "rate", idx.LastFundingRate, "error", err)
			continue
		}
		res[idx.Symbol] = rate
	}
	return res, nil
}

func (m *MarketService) OpenInterest(ctx context.Context, symbol string) (float64, error) {
	oi, err := m.cli.NewGetOpenInterestService().Symbol(symbol).Do(ctx)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(oi.OpenInterest, 64)
}
