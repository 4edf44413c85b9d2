package transport

import (
	"net/http"
	"time"

	"github.com/ds124wfegd/country-gateway/internal/pkg/metrics"
	"github.com/ds124wfegd/country-gateway/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	PublicDir      string
	RequestTimeout time.Duration
	Metrics        *metrics.Metrics
	MetricsPath    string
	ServiceName    string
}

func InitRoutes(countryHandler *CountryHandler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Tracing(opts.ServiceName))
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(opts.Metrics))
	router.Use(middleware.Timeout(opts.RequestTimeout))

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/", countryHandler.HealthCheck)

	countries := router.Group("/countries")
	{
		countries.GET("/details/:code", countryHandler.GetCountryDetails)
		countries.GET("/flags/:code", countryHandler.GetFlag)
	}

	// rendered flags
	if opts.PublicDir != "" {
		router.Static("/public", opts.PublicDir)
	}

	if opts.Metrics != nil && opts.MetricsPath != "" {
		router.GET(opts.MetricsPath, gin.WrapH(opts.Metrics.Handler()))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": opts.ServiceName,
		})
	})
	return router
}
