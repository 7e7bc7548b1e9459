package monitor

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/quantlark/oi-sentinel/internal/service/notification"
	"github.com/quantlark/oi-sentinel/pkg/percentx"
)

var directionColor = map[Direction]int{
	DirectionBullish: 0x00FF00,
	DirectionBearish: 0xFF0000,
	DirectionFlat:    0xFFFF00,
}

var directionLabel = map[Direction]string{
	DirectionBullish: "📈 bullish accumulation",
	DirectionBearish: "📉 bearish accumulation",
	DirectionFlat:    "🔄 flat accumulation",
}

// AlertDispatcher renders anomaly records into webhook embeds and sends
// them in a single call. Nothing is sent when the cycle found no anomaly.
type AlertDispatcher struct {
	webhookSvc notification.WebhookService
	url        string
	maxEmbeds  int
}

func NewAlertDispatcher(webhookSvc notification.WebhookService, cfg Config) *AlertDispatcher {
	return &AlertDispatcher{
		webhookSvc: webhookSvc,
		url:        cfg.WebhookURL,
		maxEmbeds:  cfg.TopN,
	}
}

func (d *AlertDispatcher) Dispatch(ctx context.Context, records []AnomalyRecord) error {
	if len(records) == 0 {
		return nil
	}
	if len(records) > d.maxEmbeds {
		records = records[:d.maxEmbeds]
	}

	embeds := lo.Map(records, func(r AnomalyRecord, index int) map[string]any {
		return embed(r)
	})
	return d.webhookSvc.Send(ctx, d.url, map[string]any{"embeds": embeds})
}

func embed(r AnomalyRecord) map[string]any {
	return map[string]any{
		"title": fmt.Sprintf("⚠️ %s open interest anomaly", r.Symbol),
		"color": directionColor[r.Direction],
		"fields": []map[string]any{
			{"name": "direction", "value": fmt.Sprintf("**%s**", directionLabel[r.Direction]), "inline": false},
			{"name": "OI change", "value": "+" + percentx.Fixed(r.OIChangePct, 2), "inline": true},
			{"name": "price change", "value": percentx.Fixed(r.PriceChangePct, 2), "inline": true},
			{"name": "funding rate", "value": percentx.FromRate(r.FundingRate, 4), "inline": true},
		},
	}
}
