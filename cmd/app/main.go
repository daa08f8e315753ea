package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/airinventory/config"
	"github.com/Domenick1991/airinventory/internal/bootstrap"
	"github.com/Domenick1991/airinventory/internal/cache"
	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/kafka"
	"github.com/Domenick1991/airinventory/internal/scheduler"
	"github.com/Domenick1991/airinventory/internal/seed"
	"github.com/Domenick1991/airinventory/internal/service/booking"
	"github.com/Domenick1991/airinventory/internal/service/flights"
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

	airline, err := seed.Load(cfg.Seed.Path, domain.Nobody)
	if err != nil {
		logger.Error("load seed", "error", err)
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	defer redisCache.Close()
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	sched := scheduler.New(scheduler.SystemClock())
	go func() {
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("scheduler stopped", "error", err)
		}
	}()

	flightService := flights.NewFlightService(airline, sched, logger,
		flights.WithCache(redisCache),
		flights.WithProducer(producer, cfg.Kafka.FlightTopic),
	)
	bookingService := booking.NewBookingService(airline, logger,
		booking.WithCache(redisCache),
		booking.WithProducer(producer, cfg.Kafka.BookingTopic),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	// Seeded flights need their lifecycle deadlines armed.
	for _, flight := range airline.Flights().All() {
		flightService.Register(flight)
	}

	logger.Info("starting", "airline", airline.Name(), "flights", airline.Flights().Len(), "http", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, airline, flightService, bookingService); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
