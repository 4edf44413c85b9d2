package countries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/ds124wfegd/country-gateway/internal/pkg/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usResponse = `[{
	"name": {
		"common": "United States",
		"official": "United States of America",
		"nativeName": {"eng": {"official": "United States of America", "common": "United States"}}
	},
	"cca2": "US",
	"altSpellings": ["US", "USA", "United States of America"],
	"languages": {"eng": "English"},
	"flags": {"png": "https://flagcdn.com/w320/us.png", "svg": "https://flagcdn.com/us.svg"}
}]`

func newTestServer(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/v3.1/", upstream.NewClient("restcountries", time.Second, nil))
}

func TestFetch(t *testing.T) {
	var gotPath string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usResponse))
	})

	details, err := client.Fetch(context.Background(), "us")
	require.NoError(t, err)

	assert.Equal(t, "/v3.1/alpha/us", gotPath)
	assert.Equal(t, "US", details.CountryCode)
	assert.Equal(t, "US", details.ISO2Code)
	assert.Equal(t, "United States", details.CommonName)
	assert.Equal(t, "United States of America", details.OfficialName)
	assert.Equal(t, map[string]entity.NativeName{
		"eng": {Official: "United States of America", Common: "United States"},
	}, details.NativeNames)
	assert.Equal(t, map[string]string{"eng": "English"}, details.LocalLanguages)
	assert.Equal(t, "https://flagcdn.com/w320/us.png", details.FlagPNG)
	require.NotEmpty(t, details.TimeZones)
	assert.Equal(t, "America/New_York", details.TimeZones[0])
}

func TestFetchObjectShape(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"name": {"common": "Norway", "official": "Kingdom of Norway"},
			"cca2": "NO",
			"altSpellings": ["NO", "Norge"],
			"languages": {"nno": "Norwegian Nynorsk", "nob": "Norwegian Bokmål"}
		}`))
	})

	details, err := client.Fetch(context.Background(), "nor")
	require.NoError(t, err)

	assert.Equal(t, "NOR", details.CountryCode)
	assert.Equal(t, "NO", details.ISO2Code)
	assert.Equal(t, []string{"Europe/Oslo"}, details.TimeZones)
	assert.NotNil(t, details.NativeNames)
}

func TestFetchFallsBackToCCA2(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{
			"name": {"common": "Norway", "official": "Kingdom of Norway"},
			"cca2": "no",
			"altSpellings": ["Norge"]
		}]`))
	})

	details, err := client.Fetch(context.Background(), "no")
	require.NoError(t, err)
	assert.Equal(t, "NO", details.ISO2Code)
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"status":404,"message":"Not Found"}`, wantErr: entity.ErrCountryNotFound},
		{name: "bad request", status: http.StatusBadRequest, body: `{"status":400}`, wantErr: entity.ErrCountryNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: ``, wantErr: entity.ErrCountryNotFound},
		{name: "empty array", status: http.StatusOK, body: `[]`, wantErr: entity.ErrCountryNotFound},
		{name: "not json", status: http.StatusOK, body: `<html></html>`, wantErr: entity.ErrMalformedUpstreamResponse},
		{name: "empty body", status: http.StatusOK, body: ``, wantErr: entity.ErrMalformedUpstreamResponse},
		{name: "missing names", status: http.StatusOK, body: `[{"cca2":"US"}]`, wantErr: entity.ErrMalformedUpstreamResponse},
		{name: "missing iso code", status: http.StatusOK, body: `[{"name":{"common":"X","official":"Y"}}]`, wantErr: entity.ErrMalformedUpstreamResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			details, err := client.Fetch(context.Background(), "zz")
			assert.Nil(t, details)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, upstream.NewClient("restcountries", time.Second, nil))

	_, err := client.Fetch(context.Background(), "us")
	assert.ErrorIs(t, err, entity.ErrUpstream)
}
