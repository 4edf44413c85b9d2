package service

import (
	"context"
	"strings"
	"time"

	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/sirupsen/logrus"
)

func (s *flagService) GetFlag(ctx context.Context, countryCode string) (*entity.FlagImageResult, error) {
	result, err := s.processor.FetchAndResize(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	s.metrics.FlagRendered()

	event := entity.FlagRenderedEvent{
		CountryCode: strings.TrimSpace(countryCode),
		OutputPath:  result.OutputPath,
		Width:       result.Width,
		Height:      result.Height,
		RenderedAt:  time.Now().UTC(),
	}

	// the flag is already on disk, a lost event does not fail the request
	err = s.producer.SendMessage(s.topic, event)
	s.metrics.EventPublished(s.topic, err)
	if err != nil {
		logrus.WithField("country_code", countryCode).Warnf("flag event not published: %v", err)
	}

	return result, nil
}

func (s *flagService) HandleFlagRequest(ctx context.Context, req entity.FlagRequest) error {
	_, err := s.GetFlag(ctx, req.CountryCode)
	return err
}
