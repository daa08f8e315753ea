package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/Domenick1991/airinventory/internal/kafka"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	Totals(ctx context.Context, flightNumber string) (Totals, error)
}

// Cache is invalidated after every booking so seat availability in the
// flight snapshots stays fresh.
type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	airline            *domain.Airline
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	actor              uuid.UUID
	logger             *slog.Logger
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) { s.cache = cache }
}

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) { s.notificationsTopic = topic }
}

func WithActor(actor uuid.UUID) BookingServiceOption {
	return func(s *BookingService) { s.actor = actor }
}

func NewBookingService(airline *domain.Airline, logger *slog.Logger, opts ...BookingServiceOption) *BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	service := &BookingService{
		airline: airline,
		actor:   domain.Nobody,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

type CreateBookingInput struct {
	FlightNumber string `json:"flight_number"`
	PassengerID  string `json:"passenger_id"`
	CabinClass   string `json:"cabin_class"`
	MealID       string `json:"meal_id"`
}

// Totals is the ledger roll-up: exact decimal sums of price, operating cost
// and profit.
type Totals struct {
	Price  decimal.Decimal
	Cost   decimal.Decimal
	Profit decimal.Decimal
}

// CreateBooking resolves the referenced records, reserves the first open
// seat of the requested class and appends the confirmed booking to the
// ledger. Seat selection and reservation are one atomic step inside the
// flight's seat map.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	class, err := domain.ParseCabinClass(input.CabinClass)
	if err != nil {
		return nil, err
	}
	passengerID, err := uuid.Parse(input.PassengerID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad passenger id %q", domain.ErrValidation, input.PassengerID)
	}
	mealID, err := uuid.Parse(input.MealID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad meal id %q", domain.ErrValidation, input.MealID)
	}

	flight, err := s.airline.Flights().ByNumber(input.FlightNumber)
	if err != nil {
		return nil, err
	}
	if status := flight.Status(); status != domain.FlightOpen {
		return nil, fmt.Errorf("%w: flight %s is %s", domain.ErrValidation, flight.Number(), status)
	}
	passenger, err := s.airline.Passengers().ByID(passengerID)
	if err != nil {
		return nil, err
	}
	meal, err := s.airline.Meals().ByID(mealID)
	if err != nil {
		return nil, err
	}

	booking, err := domain.Book(s.actor, flight, passenger, class, meal)
	if err != nil {
		return nil, err
	}
	s.airline.Bookings().Add(booking)

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	if err := s.publish(ctx, "booking_created", booking); err != nil {
		s.logger.Warn("publish booking_created", "booking", booking.ID(), "error", err)
	}
	return booking, nil
}

// ListByStatus returns a snapshot of the bookings in status.
func (s *BookingService) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	if _, err := domain.ParseBookingStatus(string(status)); err != nil {
		return nil, err
	}
	return s.airline.Bookings().ByStatus(status), nil
}

// Totals sums price, cost and profit over the ledger, or over one flight's
// bookings when flightNumber is non-empty. An empty selection sums to zero.
func (s *BookingService) Totals(ctx context.Context, flightNumber string) (Totals, error) {
	if flightNumber == "" {
		return Totals{
			Price:  s.airline.Bookings().SumTotal(),
			Cost:   s.airline.Bookings().SumCost(),
			Profit: s.airline.Bookings().SumProfit(),
		}, nil
	}

	flight, err := s.airline.Flights().ByNumber(flightNumber)
	if err != nil {
		return Totals{}, err
	}
	totals := Totals{Price: decimal.Zero, Cost: decimal.Zero, Profit: decimal.Zero}
	for _, bk := range s.airline.Bookings().ByFlightNumber(flight.Number()) {
		totals.Price = totals.Price.Add(bk.Total())
		totals.Cost = totals.Cost.Add(bk.Cost())
		totals.Profit = totals.Profit.Add(bk.Profit())
	}
	return totals, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:         eventType,
		BookingID:    booking.ID().String(),
		FlightNumber: booking.Flight().Number(),
		SeatNumber:   booking.Seat().Number(),
		CabinClass:   string(booking.Seat().Class()),
		Passenger:    booking.Passenger().Name(),
		Total:        booking.Total().StringFixed(2),
		Status:       string(booking.Status()),
		OccurredAt:   time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.BookingID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, event.BookingID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
