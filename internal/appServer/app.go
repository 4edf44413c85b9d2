package appServer

import (
	"github.com/ds124wfegd/country-gateway/config"
	"github.com/ds124wfegd/country-gateway/internal/database"
	"github.com/ds124wfegd/country-gateway/internal/pkg/countries"
	"github.com/ds124wfegd/country-gateway/internal/pkg/kafka"
	"github.com/ds124wfegd/country-gateway/internal/pkg/metrics"
	"github.com/ds124wfegd/country-gateway/internal/pkg/processor"
	"github.com/ds124wfegd/country-gateway/internal/pkg/storage"
	"github.com/ds124wfegd/country-gateway/internal/pkg/upstream"
	"github.com/ds124wfegd/country-gateway/internal/pkg/worldtime"
	"github.com/ds124wfegd/country-gateway/internal/service"
	"github.com/ds124wfegd/country-gateway/internal/transport"
	"github.com/sirupsen/logrus"
)

// App holds the wired services shared by the HTTP server and the flag request consumer.
type App struct {
	Countries service.CountryService
	Flags     service.FlagService
	Handler   *transport.CountryHandler
	Metrics   *metrics.Metrics

	producer kafka.Producer
}

func NewApp(cfg *config.Config) *App {
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics()
	}

	countriesHTTP := upstream.NewClient("restcountries", cfg.Upstream.Timeout, m)
	timeHTTP := upstream.NewClient("worldtimeapi", cfg.Upstream.Timeout, m)
	flagsHTTP := upstream.NewClient("flags", cfg.Upstream.Timeout, m)

	countryClient := countries.NewClient(cfg.Upstream.CountriesBaseURL, countriesHTTP)
	timeClient := worldtime.NewClient(cfg.Upstream.TimeBaseURL, timeHTTP)

	fileStorage := storage.NewFileStorage(cfg.Flags.PublicDir)
	flagRepo := database.NewFlagRepository(fileStorage)
	flagProcessor := processor.NewFlagProcessor(countryClient, flagsHTTP, flagRepo, cfg.Flags.MaxWidth)

	var producer kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
	} else {
		producer = kafka.NewMockProducer()
	}

	countryService := service.NewCountryService(countryClient, timeClient, cfg.Upstream.TimeConcurrency)
	flagService := service.NewFlagService(flagProcessor, producer, cfg.Kafka.EventsTopic, m)

	return &App{
		Countries: countryService,
		Flags:     flagService,
		Handler:   transport.NewCountryHandler(countryService, flagService),
		Metrics:   m,
		producer:  producer,
	}
}

func (a *App) Close() {
	if err := a.producer.Close(); err != nil {
		logrus.Errorf("error occured on kafka producer close: %s", err.Error())
	}
}
