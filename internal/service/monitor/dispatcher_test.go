package monitor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dispatcherConfig() Config {
	cfg := DefaultConfig()
	cfg.WebhookURL = "https://example.com/webhook"
	return cfg
}

func TestAlertDispatcher_NoRecordsNoCall(t *testing.T) {
	webhook := new(MockWebhookService)
	dispatcher := NewAlertDispatcher(webhook, dispatcherConfig())

	err := dispatcher.Dispatch(context.Background(), nil)

	assert.NoError(t, err)
	webhook.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestAlertDispatcher_CapsEmbedsAtTopN(t *testing.T) {
	records := make([]AnomalyRecord, 15)
	for i := range records {
		records[i] = AnomalyRecord{
			Symbol:         fmt.Sprintf("SYM%02dUSDT", i),
			OIChangePct:    6,
			PriceChangePct: 0.1,
			Direction:      DirectionFlat,
		}
	}

	webhook := new(MockWebhookService)
	var sent map[string]any
	webhook.On("Send", mock.Anything, "https://example.com/webhook", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).(map[string]any)
		}).
		Return(nil).
		Once()

	dispatcher := NewAlertDispatcher(webhook, dispatcherConfig())
	err := dispatcher.Dispatch(context.Background(), records)

	require.NoError(t, err)
	webhook.AssertExpectations(t)
	embeds := sent["embeds"].([]map[string]any)
	assert.Len(t, embeds, 10)
	assert.Equal(t, "⚠️ SYM00USDT open interest anomaly", embeds[0]["title"])
}

func TestAlertDispatcher_EmbedFields(t *testing.T) {
	record := AnomalyRecord{
		Symbol:         "BTCUSDT",
		OIChangePct:    6,
		PriceChangePct: 0.5,
		FundingRate:    0.0001,
		Direction:      DirectionBullish,
	}

	webhook := new(MockWebhookService)
	var sent map[string]any
	webhook.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).(map[string]any)
		}).
		Return(nil)

	dispatcher := NewAlertDispatcher(webhook, dispatcherConfig())
	require.NoError(t, dispatcher.Dispatch(context.Background(), []AnomalyRecord{record}))

	embeds := sent["embeds"].([]map[string]any)
	require.Len(t, embeds, 1)
	e := embeds[0]
	assert.Equal(t, "⚠️ BTCUSDT open interest anomaly", e["title"])
	assert.Equal(t, 0x00FF00, e["color"])

	fields := e["fields"].([]map[string]any)
	require.Len(t, fields, 4)
	assert.Equal(t, "**📈 bullish accumulation**", fields[0]["value"])
	assert.Equal(t, false, fields[0]["inline"])
	assert.Equal(t, "+6.00%", fields[1]["value"])
	assert.Equal(t, "0.50%", fields[2]["value"])
	assert.Equal(t, "0.0100%", fields[3]["value"])
}

func TestAlertDispatcher_PropagatesSendError(t *testing.T) {
	webhook := new(MockWebhookService)
	webhook.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	dispatcher := NewAlertDispatcher(webhook, dispatcherConfig())
	err := dispatcher.Dispatch(context.Background(), []AnomalyRecord{{Symbol: "BTCUSDT"}})

	assert.ErrorIs(t, err, assert.AnError)
}
