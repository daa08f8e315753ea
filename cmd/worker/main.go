package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airinventory/config"
	"github.com/Domenick1991/airinventory/internal/email"
	"github.com/Domenick1991/airinventory/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(logger)

	logger.Info("notifications worker starting", "topic", cfg.Kafka.NotificationsTopic)
	if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Warn("decode event", "error", err)
			return nil
		}
		return sender.Send(ctx, event)
	}); err != nil && ctx.Err() == nil {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
}
