package email

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/airinventory/internal/kafka"
)

// Sender delivers booking notifications. The transport is a stand-in; the
// worker only needs something to hand consumed events to.
type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.logger.Info("notify passenger",
		"passenger", event.Passenger,
		"event", event.Type,
		"flight", event.FlightNumber,
		"seat", event.SeatNumber,
		"total", event.Total,
	)
	return nil
}
