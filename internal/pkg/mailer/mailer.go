package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"travel-service/config"
	"travel-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

// Message is a single outbound email. BodyPlain is the fallback for clients
// that do not render HTML.
type Message struct {
	Subject   string   `json:"subject"`
	BodyHTML  string   `json:"body_html"`
	BodyPlain string   `json:"body_plain"`
	From      string   `json:"from"`
	To        []string `json:"to"`
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type mailer struct {
	cfg        *config.MailerConfig
	httpClient *circuit.HTTPClient
}

func New(cfg *config.MailerConfig, httpClient *circuit.HTTPClient) Mailer {
	return &mailer{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (m *mailer) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = m.cfg.FromAddress
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.PermanentDelivery(0, fmt.Errorf("marshal mail payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.PermanentDelivery(0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		// network failure or open breaker, worth retrying later
		return errors.TransientDelivery(0, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return errors.TransientDelivery(resp.StatusCode, fmt.Errorf("mail provider returned %d", resp.StatusCode))
	default:
		return errors.PermanentDelivery(resp.StatusCode, fmt.Errorf("mail provider returned %d", resp.StatusCode))
	}
}
