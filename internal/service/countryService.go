package service

import (
	"context"

	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func (s *countryService) GetCountryDetails(ctx context.Context, countryCode string) (*entity.CountryDetailsResponse, error) {
	details, err := s.countries.Fetch(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	times, err := s.currentTimes(ctx, details.TimeZones)
	if err != nil {
		logrus.WithField("country_code", details.CountryCode).Errorf("time lookup failed: %v", err)
		return nil, err
	}

	currentTimes := make([]map[string]string, 0, len(times))
	for _, t := range times {
		currentTimes = append(currentTimes, map[string]string{t.TimeZone: t.ISODateTime})
	}

	return &entity.CountryDetailsResponse{
		CommonName:     details.CommonName,
		OfficialName:   details.OfficialName,
		NativeName:     details.NativeNames,
		LocalLanguages: details.LocalLanguages,
		CurrentTimes:   currentTimes,
	}, nil
}

// currentTimes returns one entry per zone in the order of zones. The first
// failure cancels the lookups still in flight.
func (s *countryService) currentTimes(ctx context.Context, zones []string) ([]entity.CurrentTime, error) {
	out := make([]entity.CurrentTime, len(zones))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.timeConcurrency)

	for i, zone := range zones {
		g.Go(func() error {
			current, err := s.times.Fetch(gctx, zone)
			if err != nil {
				return err
			}
			out[i] = *current
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
