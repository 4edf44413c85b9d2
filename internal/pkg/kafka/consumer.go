package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ds124wfegd/country-gateway/internal/entity"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// FlagRequestHandler renders the flag named by one request message.
type FlagRequestHandler func(ctx context.Context, req entity.FlagRequest) error

// StartFlagRequestConsumer reads flag requests until ctx is cancelled.
// Malformed messages and failed renders are logged and skipped.
func StartFlagRequestConsumer(ctx context.Context, brokers []string, topic, groupID string, handle FlagRequestHandler) error {

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer reader.Close()

	logrus.Infof("Flag request consumer started on topic %s", topic)
	logrus.Infof("Connected to Kafka brokers: %v", brokers)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				logrus.Info("Flag request consumer stopped")
				return nil
			}
			logrus.Errorf("Error reading message from Kafka: %v", err)
			continue
		}

		logrus.WithFields(logrus.Fields{
			"topic":     msg.Topic,
			"partition": msg.Partition,
			"offset":    msg.Offset,
		}).Debug("Received flag request")

		req, err := ParseFlagRequest(msg.Value)
		if err != nil {
			logrus.Warnf("Failed to parse flag request: %v", err)
			continue
		}

		if err := handle(ctx, req); err != nil {
			logrus.WithField("country_code", req.CountryCode).Errorf("Flag render failed: %v", err)
			continue
		}
		logrus.WithField("country_code", req.CountryCode).Info("Flag rendered from request")
	}
}

// ParseFlagRequest decodes a message value; a bare country code is accepted as well as JSON.
func ParseFlagRequest(value []byte) (entity.FlagRequest, error) {
	raw := strings.TrimSpace(string(value))
	if raw == "" {
		return entity.FlagRequest{}, errors.New("empty message")
	}

	var req entity.FlagRequest
	if strings.HasPrefix(raw, "{") {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			return entity.FlagRequest{}, fmt.Errorf("decode flag request: %w", err)
		}
	} else {
		req.CountryCode = raw
	}

	req.CountryCode = strings.TrimSpace(req.CountryCode)
	if req.CountryCode == "" {
		return entity.FlagRequest{}, errors.New("flag request without country_code")
	}
	return req, nil
}
