package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports"

	"github.com/rs/zerolog"
)

// notifierRetryIntervals defines the delivery retry schedule.
var notifierRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	5 * time.Minute,
}

// signatureHeader carries the HMAC-SHA256 signature of the request body.
const signatureHeader = "X-Registry-Signature"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookNotifier implements ports.EventNotifier by POSTing signed event JSON
// to a configured listener URL. Delivery is asynchronous and best-effort: a
// dead listener never fails the registry operation that produced the event.
type WebhookNotifier struct {
	url        string
	secret     string
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewWebhookNotifier creates a new WebhookNotifier. An empty url disables
// delivery entirely.
func NewWebhookNotifier(
	url string,
	secret string,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	log zerolog.Logger,
) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		secret:     secret,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		log:        log,
	}
}

// Notify dispatches the event to the listener in the background.
func (s *WebhookNotifier) Notify(_ context.Context, event *domain.RegistryEvent) error {
	if s.url == "" {
		s.log.Debug().Str("kind", string(event.Kind)).Msg("notifier: no listener URL configured, skipping")
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Msg("notifier: failed to marshal event")
		return err
	}

	go s.deliverWithRetries(payload, string(event.Kind))
	return nil
}

// deliverWithRetries attempts delivery until a 2xx response or the retry
// schedule is exhausted.
func (s *WebhookNotifier) deliverWithRetries(payload []byte, kind string) {
	signature := s.sigSvc.Sign(s.secret, string(payload))

	for attempt := 0; attempt <= len(notifierRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(notifierRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payload))
		if err != nil {
			s.log.Error().Err(err).Str("kind", kind).Msg("notifier: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(signatureHeader, signature)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("kind", kind).Int("attempt", attempt+1).Msg("notifier: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().Str("kind", kind).Int("attempt", attempt+1).Msg("notifier: event delivered")
			return
		}

		s.log.Warn().Str("kind", kind).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notifier: non-2xx response, retrying")
	}

	s.log.Error().Str("kind", kind).Msg("notifier: all retry attempts exhausted")
}
