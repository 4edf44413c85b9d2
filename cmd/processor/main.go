package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ds124wfegd/country-gateway/config"
	"github.com/ds124wfegd/country-gateway/internal/appServer"
	"github.com/ds124wfegd/country-gateway/internal/pkg/kafka"
	"github.com/sirupsen/logrus"
)

// processor pre-renders flags requested over kafka.
func main() {
	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err.Error())
	}

	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("error parsing config: %s", err.Error())
	}

	appServer.SetupLogger(cfg.Log)

	app := appServer.NewApp(cfg)
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := kafka.StartFlagRequestConsumer(
		ctx,
		cfg.Kafka.Brokers,
		cfg.Kafka.RequestsTopic,
		cfg.Kafka.GroupID,
		app.Flags.HandleFlagRequest,
	); err != nil {
		logrus.Errorf("flag request consumer failed: %s", err.Error())
	}
}
