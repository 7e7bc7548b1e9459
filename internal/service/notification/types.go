package notification

import "context"

type WebhookService interface {
	Send(ctx context.Context, url string, data map[string]any) error
}
