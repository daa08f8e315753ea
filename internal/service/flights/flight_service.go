package flights

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/kafka"
	"github.com/Domenick1991/airinventory/internal/scheduler"
	"github.com/google/uuid"
)

type FlightUseCase interface {
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.FlightSummary, error)
	ByNumber(ctx context.Context, pattern string) (*domain.Flight, error)
	ByStatus(ctx context.Context, status domain.FlightStatus) ([]*domain.Flight, error)
	Seats(ctx context.Context, number string, class string, availableOnly bool) ([]*domain.Seat, error)
	SetStatus(ctx context.Context, number string, status domain.FlightStatus) (*domain.Flight, error)
}

// Cache is the optional flight snapshot cache.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.FlightSummary, error)
	SetFlights(ctx context.Context, flights []domain.FlightSummary) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// FlightService owns flight registration and the deadline-driven lifecycle.
// Every flight gets two callbacks armed at creation: one at the departure
// instant, one at the arrival instant. Both are idempotent, and the arrival
// handler defers to the departure handler so no flight can skip
// OPEN -> DEPARTED.
type FlightService struct {
	airline     *domain.Airline
	sched       *scheduler.Scheduler
	cache       Cache
	producer    Producer
	flightTopic string
	actor       uuid.UUID
	logger      *slog.Logger
}

type FlightServiceOption func(*FlightService)

func WithCache(cache Cache) FlightServiceOption {
	return func(s *FlightService) { s.cache = cache }
}

func WithProducer(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.flightTopic = topic
	}
}

func WithActor(actor uuid.UUID) FlightServiceOption {
	return func(s *FlightService) { s.actor = actor }
}

func NewFlightService(airline *domain.Airline, sched *scheduler.Scheduler, logger *slog.Logger, opts ...FlightServiceOption) *FlightService {
	if logger == nil {
		logger = slog.Default()
	}
	service := &FlightService{
		airline: airline,
		sched:   sched,
		actor:   domain.Nobody,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

type CreateFlightInput struct {
	Number            string    `json:"number"`
	Aircraft          string    `json:"aircraft"`
	From              string    `json:"from"`
	To                string    `json:"to"`
	Departure         time.Time `json:"departure"`
	DurationMinutes   int       `json:"duration_minutes"`
	FirstClassPrice   string    `json:"first_class_price"`
	EconomyClassPrice string    `json:"economy_class_price"`
}

// Create registers a new flight and arms its departure and arrival
// deadlines.
func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	number := strings.TrimSpace(input.Number)
	if number == "" {
		return nil, fmt.Errorf("%w: flight number is required", domain.ErrValidation)
	}
	if _, ok := s.airline.Flights().Find(func(f *domain.Flight) bool { return f.Number() == number }); ok {
		return nil, fmt.Errorf("%w: flight number %s", domain.ErrDuplicateIdentity, number)
	}

	aircraft, err := s.airline.Aircrafts().ByName(input.Aircraft)
	if err != nil {
		return nil, err
	}
	from, err := s.airline.Airports().ByName(input.From)
	if err != nil {
		return nil, err
	}
	to, err := s.airline.Airports().ByName(input.To)
	if err != nil {
		return nil, err
	}
	firstPrice, err := domain.ParsePrice(input.FirstClassPrice)
	if err != nil {
		return nil, err
	}
	economyPrice, err := domain.ParsePrice(input.EconomyClassPrice)
	if err != nil {
		return nil, err
	}

	flight, err := domain.NewFlight(s.actor, number, aircraft, input.Departure, from, to, time.Duration(input.DurationMinutes)*time.Minute, firstPrice, economyPrice)
	if err != nil {
		return nil, err
	}
	s.airline.Flights().Add(flight)
	s.Register(flight)

	s.invalidate(ctx)
	s.publish(ctx, "flight_created", flight)
	return flight, nil
}

// Register arms the lifecycle deadlines for a flight that is already in the
// register, e.g. one built by the seed loader.
func (s *FlightService) Register(flight *domain.Flight) {
	s.sched.Schedule(flight.Departure(), func() { s.handleDeparture(flight) })
	s.sched.Schedule(flight.Arrival(), func() { s.handleArrival(flight) })
}

// handleDeparture closes every confirmed booking on the flight, then moves
// the flight to DEPARTED. Closing first means no observer can see a
// DEPARTED flight with open bookings. Duplicate firings are no-ops.
func (s *FlightService) handleDeparture(flight *domain.Flight) {
	closed := s.airline.Bookings().CloseConfirmedForFlight(s.actor, flight.Number())
	if !flight.Depart(s.actor) {
		return
	}
	s.logger.Info("flight departed", "flight", flight.Number(), "bookings_closed", len(closed))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.invalidate(ctx)
		s.publish(ctx, "flight_departed", flight)
	}()
}

// handleArrival moves the flight to CLOSED. A flight whose departure
// deadline has somehow not fired yet is departed first.
func (s *FlightService) handleArrival(flight *domain.Flight) {
	s.handleDeparture(flight)
	if !flight.Close(s.actor) {
		return
	}
	s.logger.Info("flight arrived", "flight", flight.Number())

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.invalidate(ctx)
		s.publish(ctx, "flight_closed", flight)
	}()
}

// List returns summaries of every flight, via the snapshot cache when one
// is configured.
func (s *FlightService) List(ctx context.Context) ([]domain.FlightSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	all := s.airline.Flights().All()
	summaries := make([]domain.FlightSummary, 0, len(all))
	for _, f := range all {
		summaries = append(summaries, f.Summarize())
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, summaries)
	}
	return summaries, nil
}

// ByNumber finds a flight by case-insensitive number prefix.
func (s *FlightService) ByNumber(ctx context.Context, pattern string) (*domain.Flight, error) {
	return s.airline.Flights().ByNumber(pattern)
}

// ByStatus returns a snapshot of the flights in status.
func (s *FlightService) ByStatus(ctx context.Context, status domain.FlightStatus) ([]*domain.Flight, error) {
	if _, err := domain.ParseFlightStatus(string(status)); err != nil {
		return nil, err
	}
	return s.airline.Flights().ByStatus(status), nil
}

// Seats returns a seat snapshot for the flight, optionally restricted to a
// cabin class and to available seats.
func (s *FlightService) Seats(ctx context.Context, number string, class string, availableOnly bool) ([]*domain.Seat, error) {
	flight, err := s.airline.Flights().ByNumber(number)
	if err != nil {
		return nil, err
	}
	if class == "" {
		if availableOnly {
			return flight.Seats().Available(), nil
		}
		return flight.Seats().All(), nil
	}
	cabin, err := domain.ParseCabinClass(class)
	if err != nil {
		return nil, err
	}
	if availableOnly {
		return flight.Seats().AvailableOfClass(cabin), nil
	}
	return flight.Seats().OfClass(cabin), nil
}

// SetStatus applies the administrative status override.
func (s *FlightService) SetStatus(ctx context.Context, number string, status domain.FlightStatus) (*domain.Flight, error) {
	flight, err := s.airline.Flights().ByNumber(number)
	if err != nil {
		return nil, err
	}
	if err := flight.SetStatus(s.actor, status); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publish(ctx, "flight_status_set", flight)
	return flight, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		s.logger.Warn("invalidate flights cache", "error", err)
	}
}

func (s *FlightService) publish(ctx context.Context, eventType string, flight *domain.Flight) {
	if s.producer == nil || s.flightTopic == "" {
		return
	}
	event := kafka.FlightEvent{
		Type:         eventType,
		FlightNumber: flight.Number(),
		Status:       string(flight.Status()),
		OccurredAt:   time.Now(),
	}
	if err := s.producer.Publish(ctx, s.flightTopic, flight.Number(), event); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("publish flight event", "type", eventType, "flight", flight.Number(), "error", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
