package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpstream(t *testing.T) {
	m := NewMetrics()

	m.ObserveUpstream("restcountries", http.StatusOK, 10*time.Millisecond)
	m.ObserveUpstream("restcountries", http.StatusNotFound, 5*time.Millisecond)
	m.ObserveUpstream("restcountries", 0, time.Millisecond)
	m.ObserveUpstream("worldtimeapi", http.StatusOK, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("restcountries", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("restcountries", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("restcountries", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("worldtimeapi", "2xx")))
}

func TestFlagAndEventCounters(t *testing.T) {
	m := NewMetrics()

	m.FlagRendered()
	m.FlagRendered()
	m.EventPublished("country-flags", nil)
	m.EventPublished("country-flags", errors.New("broker down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FlagsRendered))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("country-flags", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("country-flags", "error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveUpstream("restcountries", http.StatusOK, time.Millisecond)
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.FlagRendered()
		m.EventPublished("topic", nil)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTP(http.MethodGet, "/countries/details/:code", http.StatusOK, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "country_gateway_http_requests_total")
}
