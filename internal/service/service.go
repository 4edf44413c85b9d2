package service

import (
	"context"

	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/ds124wfegd/country-gateway/internal/pkg/countries"
	"github.com/ds124wfegd/country-gateway/internal/pkg/kafka"
	"github.com/ds124wfegd/country-gateway/internal/pkg/metrics"
	"github.com/ds124wfegd/country-gateway/internal/pkg/processor"
	"github.com/ds124wfegd/country-gateway/internal/pkg/worldtime"
)

type CountryService interface {
	GetCountryDetails(ctx context.Context, countryCode string) (*entity.CountryDetailsResponse, error)
}

type FlagService interface {
	GetFlag(ctx context.Context, countryCode string) (*entity.FlagImageResult, error)
	HandleFlagRequest(ctx context.Context, req entity.FlagRequest) error
}

type countryService struct {
	countries       countries.Client
	times           worldtime.Client
	timeConcurrency int
}

// NewCountryService looks up time zones with at most timeConcurrency requests in flight;
// 1 keeps them strictly sequential.
func NewCountryService(countries countries.Client, times worldtime.Client, timeConcurrency int) CountryService {
	if timeConcurrency < 1 {
		timeConcurrency = 1
	}
	return &countryService{
		countries:       countries,
		times:           times,
		timeConcurrency: timeConcurrency,
	}
}

type flagService struct {
	processor processor.FlagProcessor
	producer  kafka.Producer
	topic     string
	metrics   *metrics.Metrics
}

func NewFlagService(processor processor.FlagProcessor, producer kafka.Producer, topic string, m *metrics.Metrics) FlagService {
	return &flagService{
		processor: processor,
		producer:  producer,
		topic:     topic,
		metrics:   m,
	}
}
