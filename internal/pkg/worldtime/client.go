package worldtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/ds124wfegd/country-gateway/internal/pkg/upstream"
)

type Client interface {
	Fetch(ctx context.Context, timeZone string) (*entity.CurrentTime, error)
}

type worldTimeClient struct {
	baseURL  string
	upstream *upstream.Client
}

func NewClient(baseURL string, httpClient *upstream.Client) Client {
	return &worldTimeClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		upstream: httpClient,
	}
}

type timezoneResponse struct {
	Datetime string `json:"datetime"`
}

// Fetch returns the current ISO-8601 time in timeZone. Zone names contain
// slashes ("America/New_York") and are appended to the base URL unescaped.
func (c *worldTimeClient) Fetch(ctx context.Context, timeZone string) (*entity.CurrentTime, error) {
	resp, err := c.upstream.Get(ctx, c.baseURL+"/"+timeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", entity.ErrTimeZoneNotFound, timeZone)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, fmt.Errorf("%w: time lookup for %s returned status %d", entity.ErrUpstream, timeZone, resp.StatusCode)
	}

	var out timezoneResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrMalformedUpstreamResponse, err)
	}
	if out.Datetime == "" {
		return nil, fmt.Errorf("%w: no datetime for %s", entity.ErrMalformedUpstreamResponse, timeZone)
	}

	return &entity.CurrentTime{
		TimeZone:    timeZone,
		ISODateTime: out.Datetime,
	}, nil
}
