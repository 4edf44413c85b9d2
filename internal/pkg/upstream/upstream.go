// Package upstream wraps outbound HTTP calls to third-party APIs with a
// finite timeout, a tracing span and request metrics.
package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/ds124wfegd/country-gateway/internal/pkg/metrics"
	"github.com/ds124wfegd/country-gateway/internal/pkg/tracing"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Client struct {
	name       string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewClient(name string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		name:       name,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

func (c *Client) Name() string {
	return c.name
}

// Get issues a GET request. The caller owns the response body.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	ctx, span := tracing.Tracer().Start(ctx, c.name+" GET",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("upstream", c.name),
			attribute.String("http.url", url),
		),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.ObserveUpstream(c.name, 0, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logrus.WithFields(logrus.Fields{
			"upstream": c.name,
			"url":      url,
			"duration": elapsed,
		}).Warnf("upstream request failed: %v", err)
		return nil, err
	}

	c.metrics.ObserveUpstream(c.name, resp.StatusCode, elapsed)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}

	logrus.WithFields(logrus.Fields{
		"upstream": c.name,
		"url":      url,
		"status":   resp.StatusCode,
		"duration": elapsed,
	}).Debug("upstream request")

	return resp, nil
}
