package mailer_test

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-service/config"
	"travel-service/internal/pkg/errors"
	"travel-service/internal/pkg/httpclient"
	"travel-service/internal/pkg/mailer"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func newMailer(endpoint string) mailer.Mailer {
	cfg := &config.MailerConfig{
		Endpoint:    endpoint,
		FromAddress: "noreply@alxtravel.com",
	}
	clientCfg := &config.HttpClientConfig{Threshold: 10, Timeout: 5}
	cb := httpclient.InitCircuitBreaker(clientCfg, httpclient.TypeConsecutive)
	return mailer.New(cfg, httpclient.InitHttpClient(clientCfg, cb))
}

func sampleMessage() mailer.Message {
	return mailer.Message{
		Subject:   "Booking Confirmation - Test Beach House",
		BodyHTML:  "<p>confirmed</p>",
		BodyPlain: "confirmed",
		To:        []string{"test@example.com"},
	}
}

func TestSendDeliversPayload(t *testing.T) {
	var received mailer.Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	err := newMailer(server.URL).Send(context.Background(), sampleMessage())

	assert.NoError(t, err)
	assert.Equal(t, "Booking Confirmation - Test Beach House", received.Subject)
	assert.Equal(t, []string{"test@example.com"}, received.To)
	assert.Equal(t, "noreply@alxtravel.com", received.From)
}

func TestSendClassifiesFailures(t *testing.T) {
	testCases := []struct {
		name          string
		status        int
		wantTransient bool
	}{
		{name: "server error is transient", status: http.StatusInternalServerError, wantTransient: true},
		{name: "rate limit is transient", status: http.StatusTooManyRequests, wantTransient: true},
		{name: "rejected payload is permanent", status: http.StatusBadRequest, wantTransient: false},
		{name: "unknown recipient is permanent", status: http.StatusNotFound, wantTransient: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			err := newMailer(server.URL).Send(context.Background(), sampleMessage())

			assert.Error(t, err)
			var deliveryErr *errors.DeliveryError
			assert.True(t, stderrors.As(err, &deliveryErr))
			assert.Equal(t, tc.wantTransient, deliveryErr.Transient)
			assert.Equal(t, tc.status, deliveryErr.Status)
		})
	}
}

func TestSendUnreachableProviderIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := newMailer(server.URL).Send(context.Background(), sampleMessage())

	assert.Error(t, err)
	var deliveryErr *errors.DeliveryError
	assert.True(t, stderrors.As(err, &deliveryErr))
	assert.True(t, deliveryErr.Transient)
}

func TestSendKeepsExplicitFrom(t *testing.T) {
	var received mailer.Message
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	msg := sampleMessage()
	msg.From = "bookings@alxtravel.com"

	assert.NoError(t, newMailer(server.URL).Send(context.Background(), msg))
	assert.Equal(t, "bookings@alxtravel.com", received.From)
}
