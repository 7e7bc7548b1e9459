package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/quantlark/oi-sentinel/internal/service/notification"
)

const defaultTimeout = 10 * time.Second

type WebhookService struct {
	cli *resty.Client
}

func NewWebhookService() notification.WebhookService {
	return &WebhookService{
		cli: resty.New().SetTimeout(defaultTimeout),
	}
}

func (s *WebhookService) Send(ctx context.Context, url string, data map[string]any) error {
	resp, err := s.cli.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("discord webhook responded %s: %s", resp.Status(), resp.String())
	}
	return nil
}
