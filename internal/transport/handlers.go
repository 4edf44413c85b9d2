package transport

import (
	"github.com/ds124wfegd/country-gateway/internal/service"
)

type CountryHandler struct {
	countries service.CountryService
	flags     service.FlagService
}

func NewCountryHandler(countries service.CountryService, flags service.FlagService) *CountryHandler {
	return &CountryHandler{countries: countries, flags: flags}
}
