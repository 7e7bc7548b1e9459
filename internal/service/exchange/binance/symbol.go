package binance

import (
	"context"
	"regexp"
	"strings"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/samber/lo"

	"github.com/quantlark/oi-sentinel/internal/service/exchange"
)

const (
	statusTrading     = "TRADING"
	contractPerpetual = "PERPETUAL"
)

// 排除的计价币种后缀
var excludedQuoteSuffix = []string{"USDC"}

// 币安部分交割合约的 contractType 字段不可靠, 交易对名里带 6 位日期, 例如 BTCUSDT_240628
var datedSymbolPattern = regexp.MustCompile(`\d{6}`)

type SymbolService struct {
	cli *futures.Client
}

func NewSymbolService(cli *futures.Client) exchange.SymbolService {
	return &SymbolService{cli: cli}
}

func (svc *SymbolService) EligibleSymbols(ctx context.Context) ([]string, error) {
	info, err := svc.cli.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(info.Symbols, func(item futures.Symbol, index int) (string, bool) {
		return item.Symbol, eligible(item)
	}), nil
}

func eligible(s futures.Symbol) bool {
	if s.Status != statusTrading {
		return false
	}
	if s.ContractType != contractPerpetual {
		return false
	}
	upper := strings.ToUpper(s.Symbol)
	for _, suffix := range excludedQuoteSuffix {
		if strings.HasSuffix(upper, suffix) {
			return false
		}
	}
	return !datedSymbolPattern.MatchString(s.Symbol)
}
