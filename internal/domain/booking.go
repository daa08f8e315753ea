package domain

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingClosed    BookingStatus = "CLOSED"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingConfirmed, BookingClosed:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
}

// Booking binds a flight, passenger, seat and meal into a confirmed
// reservation. Creating a booking and reserving its seat is a single
// indivisible operation: the price is quoted first, then the seat is flipped
// through the flight's SeatMap, so a failed quote never leaks a reserved
// seat and a taken seat never produces a booking.
type Booking struct {
	Entity
	flight    *Flight
	passenger *Passenger
	seat      *Seat
	meal      *Meal
	quote     Quote

	mu     sync.Mutex
	status BookingStatus
}

// NewBooking creates a booking for a specific seat, reserving it
// atomically. The seat must belong to the flight and be AVAILABLE.
func NewBooking(actor uuid.UUID, flight *Flight, passenger *Passenger, seat *Seat, meal *Meal) (*Booking, error) {
	if flight == nil || passenger == nil || seat == nil || meal == nil {
		return nil, fmt.Errorf("%w: booking requires flight, passenger, seat and meal", ErrValidation)
	}
	owned, err := flight.Seats().ByNumber(seat.Number())
	if err != nil || owned.ID() != seat.ID() {
		return nil, fmt.Errorf("%w: seat %d does not belong to flight %s", ErrValidation, seat.Number(), flight.Number())
	}
	quote, err := quoteFor(flight, seat.Class(), meal)
	if err != nil {
		return nil, err
	}
	if _, err := flight.Seats().ReserveByNumber(actor, seat.Number()); err != nil {
		return nil, err
	}
	return confirmed(actor, flight, passenger, seat, meal, quote), nil
}

// Book reserves the first open seat of class on the flight and creates the
// booking for it.
func Book(actor uuid.UUID, flight *Flight, passenger *Passenger, class CabinClass, meal *Meal) (*Booking, error) {
	if flight == nil || passenger == nil || meal == nil {
		return nil, fmt.Errorf("%w: booking requires flight, passenger and meal", ErrValidation)
	}
	quote, err := quoteFor(flight, class, meal)
	if err != nil {
		return nil, err
	}
	seat, err := flight.Seats().ReserveFirstAvailable(actor, class)
	if err != nil {
		return nil, err
	}
	return confirmed(actor, flight, passenger, seat, meal, quote), nil
}

func quoteFor(flight *Flight, class CabinClass, meal *Meal) (Quote, error) {
	classPrice, err := flight.PriceFor(class)
	if err != nil {
		return Quote{}, err
	}
	return NewQuote(classPrice, meal.Price())
}

func confirmed(actor uuid.UUID, flight *Flight, passenger *Passenger, seat *Seat, meal *Meal, quote Quote) *Booking {
	return &Booking{
		Entity:    NewEntity(actor),
		flight:    flight,
		passenger: passenger,
		seat:      seat,
		meal:      meal,
		quote:     quote,
		status:    BookingConfirmed,
	}
}

func (b *Booking) Flight() *Flight       { return b.flight }
func (b *Booking) Passenger() *Passenger { return b.passenger }
func (b *Booking) Seat() *Seat           { return b.seat }
func (b *Booking) Meal() *Meal           { return b.meal }

func (b *Booking) Total() decimal.Decimal  { return b.quote.Total }
func (b *Booking) Cost() decimal.Decimal   { return b.quote.Cost }
func (b *Booking) Profit() decimal.Decimal { return b.quote.Profit }

func (b *Booking) Status() BookingStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// Close moves the booking CONFIRMED -> CLOSED when its flight departs.
// Closing an already-closed booking is a no-op so the departure handler can
// fire more than once.
func (b *Booking) Close(actor uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == BookingClosed {
		return nil
	}
	b.status = BookingClosed
	b.Touch(actor)
	return nil
}
