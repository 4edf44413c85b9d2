package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func (h *CountryHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, entity.HealthResponse{HealthCheck: "Hello there!"})
}

func (h *CountryHandler) GetCountryDetails(c *gin.Context) {
	code := c.Param("code")

	details, err := h.countries.GetCountryDetails(c.Request.Context(), code)
	if err != nil {
		h.abortWithError(c, code, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *CountryHandler) GetFlag(c *gin.Context) {
	code := c.Param("code")

	flag, err := h.flags.GetFlag(c.Request.Context(), code)
	if err != nil {
		h.abortWithError(c, code, err)
		return
	}

	c.JSON(http.StatusOK, flag)
}

func (h *CountryHandler) abortWithError(c *gin.Context, code string, err error) {
	status, message := errorStatus(err)

	logrus.WithFields(logrus.Fields{
		"country_code": code,
		"status":       status,
		"path":         c.Request.URL.Path,
	}).Errorf("request failed: %v", err)

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// errorStatus maps the error kinds of the lookup and flag pipeline to an HTTP response.
// Upstream failures are checked first: a flag lookup wraps them in ErrFlagNotFound.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrUpstream):
		return http.StatusBadGateway, "Upstream service unavailable"
	case errors.Is(err, entity.ErrMalformedUpstreamResponse):
		return http.StatusBadGateway, "Malformed upstream response"
	case errors.Is(err, entity.ErrCountryNotFound), errors.Is(err, entity.ErrFlagNotFound):
		return http.StatusNotFound, "Country not found"
	case errors.Is(err, entity.ErrTimeZoneNotFound):
		return http.StatusBadGateway, "Time zone not found"
	case errors.Is(err, entity.ErrImageDownload):
		return http.StatusBadGateway, "Flag image download failed"
	case errors.Is(err, entity.ErrImageDecode):
		return http.StatusBadGateway, "Flag image could not be decoded"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
