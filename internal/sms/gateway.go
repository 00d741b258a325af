// Package sms is the boundary to the remote SMS provider. The gateway only
// transports already-composed messages; rendering and validation live in the
// finance package.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"tourdesk/internal/domain"
)

// BulkRequest is the provider payload for one message to many bookings.
type BulkRequest struct {
	BookingIDs   []string   `json:"bookingIds"`
	Message      string     `json:"message"`
	ScheduleDate *time.Time `json:"scheduleDate,omitempty"`
}

// IndividualRequest targets a single booking.
type IndividualRequest struct {
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
}

// Gateway dispatches composed messages. Implementations must not retry on
// their own; the caller decides.
type Gateway interface {
	SendBulk(ctx context.Context, req BulkRequest) error
	SendIndividual(ctx context.Context, req IndividualRequest) error
}

// LogGateway writes sends to the process log instead of dispatching them.
// Used when no provider is configured.
type LogGateway struct{}

func (LogGateway) SendBulk(_ context.Context, req BulkRequest) error {
	log.Printf("[SMS] bulk recipients=%d chars=%d (no gateway configured)", len(req.BookingIDs), len(req.Message))
	return nil
}

func (LogGateway) SendIndividual(_ context.Context, req IndividualRequest) error {
	log.Printf("[SMS] send booking=%s chars=%d (no gateway configured)", req.BookingID, len(req.Message))
	return nil
}

// HTTPGateway posts to a remote SMS HTTP API.
type HTTPGateway struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewHTTPGateway(baseURL, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
	}
}

func (g *HTTPGateway) SendBulk(ctx context.Context, req BulkRequest) error {
	return g.post(ctx, "/sms/bulk", req)
}

func (g *HTTPGateway) SendIndividual(ctx context.Context, req IndividualRequest) error {
	return g.post(ctx, "/sms/send", req)
}

func (g *HTTPGateway) post(ctx context.Context, path string, payload any) error {
	buf, err := json.Marshal(payload)
	if err != nil {
		return domain.InternalError{Msg: "encode sms payload", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+path, bytes.NewReader(buf))
	if err != nil {
		return domain.UpstreamError{Op: "sms dispatch", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if g.APIKey != "" {
		req.Header.Set("X-Api-Key", g.APIKey)
	}

	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.UpstreamError{Op: "sms dispatch", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.UpstreamError{Op: "sms dispatch", Status: resp.StatusCode,
			Err: fmt.Errorf("sms gateway: %s", resp.Status)}
	}
	return nil
}
