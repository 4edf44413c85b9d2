package countries

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/ds124wfegd/country-gateway/internal/pkg/tzdata"
	"github.com/ds124wfegd/country-gateway/internal/pkg/upstream"
	"github.com/sirupsen/logrus"
)

type Client interface {
	Fetch(ctx context.Context, countryCode string) (*entity.CountryDetails, error)
}

type countriesClient struct {
	baseURL  string
	upstream *upstream.Client
}

func NewClient(baseURL string, httpClient *upstream.Client) Client {
	return &countriesClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		upstream: httpClient,
	}
}

// restcountries v3.1 fields used by the gateway
type restCountry struct {
	Name struct {
		Common     string                       `json:"common"`
		Official   string                       `json:"official"`
		NativeName map[string]entity.NativeName `json:"nativeName"`
	} `json:"name"`
	CCA2         string            `json:"cca2"`
	AltSpellings []string          `json:"altSpellings"`
	Languages    map[string]string `json:"languages"`
	Flags        struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
}

func (c *countriesClient) Fetch(ctx context.Context, countryCode string) (*entity.CountryDetails, error) {
	endpoint := fmt.Sprintf("%s/alpha/%s", c.baseURL, url.PathEscape(countryCode))

	resp, err := c.upstream.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logrus.WithFields(logrus.Fields{
			"country_code": countryCode,
			"status":       resp.StatusCode,
		}).Info("country lookup rejected by upstream")
		return nil, fmt.Errorf("%w: %s (status %d)", entity.ErrCountryNotFound, countryCode, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", entity.ErrUpstream, err)
	}

	country, err := decodeCountry(body)
	if err != nil {
		return nil, err
	}

	return toDetails(countryCode, country)
}

// decodeCountry accepts both the array and the single-object shapes of /alpha/{code}.
func decodeCountry(body []byte) (*restCountry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", entity.ErrMalformedUpstreamResponse)
	}

	if trimmed[0] == '[' {
		var arr []restCountry
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrMalformedUpstreamResponse, err)
		}
		if len(arr) == 0 {
			return nil, fmt.Errorf("%w: empty result", entity.ErrCountryNotFound)
		}
		return &arr[0], nil
	}

	var obj restCountry
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrMalformedUpstreamResponse, err)
	}
	return &obj, nil
}

func toDetails(countryCode string, c *restCountry) (*entity.CountryDetails, error) {
	if c.Name.Common == "" || c.Name.Official == "" {
		return nil, fmt.Errorf("%w: missing country name", entity.ErrMalformedUpstreamResponse)
	}

	iso2 := isoAlpha2(c)
	if iso2 == "" {
		return nil, fmt.Errorf("%w: missing two-letter code", entity.ErrMalformedUpstreamResponse)
	}

	nativeNames := c.Name.NativeName
	if nativeNames == nil {
		nativeNames = map[string]entity.NativeName{}
	}
	languages := c.Languages
	if languages == nil {
		languages = map[string]string{}
	}

	return &entity.CountryDetails{
		CountryCode:    strings.ToUpper(countryCode),
		ISO2Code:       iso2,
		CommonName:     c.Name.Common,
		OfficialName:   c.Name.Official,
		NativeNames:    nativeNames,
		LocalLanguages: languages,
		TimeZones:      tzdata.CountryTimezones(iso2),
		FlagPNG:        c.Flags.PNG,
	}, nil
}

// isoAlpha2 prefers the first alternate spelling, which restcountries fills with the
// alpha-2 code, and falls back to cca2.
func isoAlpha2(c *restCountry) string {
	if len(c.AltSpellings) > 0 && len(c.AltSpellings[0]) == 2 {
		return strings.ToUpper(c.AltSpellings[0])
	}
	return strings.ToUpper(c.CCA2)
}
