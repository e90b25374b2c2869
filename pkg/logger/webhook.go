package logger

import (
	"context"
	"fmt"
	"time"

	xhttp "TickerGate/pkg/http"
)

// WebhookPublisher ships aggregated log batches to an HTTP endpoint.
type WebhookPublisher struct {
	url    string
	client *xhttp.Client
}

func NewWebhookPublisher(url string) *WebhookPublisher {
	return &WebhookPublisher{
		url:    url,
		client: xhttp.NewClient(xhttp.WithTimeout(30 * time.Second)),
	}
}

// PublishMessage posts the payload as JSON. The topic travels as a header so
// one endpoint can fan batches out.
func (p *WebhookPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	err := p.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     p.url,
		Headers: map[string]string{"X-Log-Topic": topic},
		Body:    payload,
	}, nil)
	if err != nil {
		return fmt.Errorf("publish logs: %w", err)
	}
	return nil
}
