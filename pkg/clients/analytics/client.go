package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/navarrastar/leadpage/pkg/logger"
)

// Tracker defines the fire-and-forget analytics port. Calls never block the
// caller on network I/O and never report failures back.
type Tracker interface {
	TrackEvent(ctx context.Context, name string, attrs map[string]any)
	TrackConversion(ctx context.Context, action string, value float64)
	TrackPageView(ctx context.Context, path string)
	// Close waits for in-flight events to be delivered.
	Close()
}

// Options configures the Measurement Protocol client
type Options struct {
	MeasurementID string
	APISecret     string
	Endpoint      string
	Currency      string
	Timeout       time.Duration
	HTTPClient    *http.Client
}

type clientImpl struct {
	opts   Options
	client *http.Client
	log    *slog.Logger
	wg     sync.WaitGroup
}

// NewClient creates a GA4 Measurement Protocol tracker
func NewClient(opts Options, log *slog.Logger) Tracker {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Currency == "" {
		opts.Currency = "BRL"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &clientImpl{
		opts:   opts,
		client: client,
		log:    log.With(logger.Scope("clients.analytics")),
	}
}

type event struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

type payload struct {
	ClientID string  `json:"client_id"`
	Events   []event `json:"events"`
}

func (c *clientImpl) TrackEvent(ctx context.Context, name string, attrs map[string]any) {
	c.dispatch(ctx, event{Name: name, Params: copyParams(attrs)})
}

func (c *clientImpl) TrackConversion(ctx context.Context, action string, value float64) {
	c.dispatch(ctx, event{Name: action, Params: map[string]any{
		"value":    value,
		"currency": c.opts.Currency,
	}})
}

func (c *clientImpl) TrackPageView(ctx context.Context, path string) {
	c.dispatch(ctx, event{Name: "page_view", Params: map[string]any{
		"page_location": path,
	}})
}

func (c *clientImpl) Close() {
	c.wg.Wait()
}

func (c *clientImpl) dispatch(ctx context.Context, ev event) {
	// Detach from the request so delivery survives the response being written.
	ctx = context.WithoutCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()

		if err := c.send(ctx, ev); err != nil {
			c.log.Warn("analytics event not delivered", slog.String("event", ev.Name), logger.Error(err))
		}
	}()
}

func (c *clientImpl) send(ctx context.Context, ev event) error {
	body := payload{
		ClientID: uuid.NewString(),
		Events:   []event{ev},
	}

	jsonPayload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	q := url.Values{}
	q.Set("measurement_id", c.opts.MeasurementID)
	q.Set("api_secret", c.opts.APISecret)
	endpoint := c.opts.Endpoint + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending event: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("error from analytics endpoint: %d %s", resp.StatusCode, string(respBody))
	}

	c.log.Debug("analytics event delivered", slog.String("event", ev.Name))
	return nil
}

func copyParams(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
