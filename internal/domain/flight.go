package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FlightStatus string

const (
	FlightOpen     FlightStatus = "OPEN"
	FlightDeparted FlightStatus = "DEPARTED"
	FlightClosed   FlightStatus = "CLOSED"
)

func ParseFlightStatus(s string) (FlightStatus, error) {
	switch FlightStatus(s) {
	case FlightOpen, FlightDeparted, FlightClosed:
		return FlightStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown flight status %q", ErrValidation, s)
}

func (s FlightStatus) rank() int {
	switch s {
	case FlightOpen:
		return 0
	case FlightDeparted:
		return 1
	default:
		return 2
	}
}

// Flight is one scheduled departure. It exclusively owns its seat map,
// built from the aircraft's class counts: first-class seats numbered 1..f,
// then economy f+1..f+e. The status moves forward only, driven by the
// departure and arrival deadlines.
type Flight struct {
	Entity
	number            string
	aircraft          *Aircraft
	departure         time.Time
	arrival           time.Time
	duration          time.Duration
	from              *Airport
	to                *Airport
	firstClassPrice   decimal.Decimal
	economyClassPrice decimal.Decimal
	seats             *SeatMap

	mu     sync.Mutex
	status FlightStatus
}

func NewFlight(actor uuid.UUID, number string, aircraft *Aircraft, departure time.Time, from, to *Airport, duration time.Duration, firstClassPrice, economyClassPrice decimal.Decimal) (*Flight, error) {
	if strings.TrimSpace(number) == "" {
		return nil, fmt.Errorf("%w: flight number is empty", ErrValidation)
	}
	if aircraft == nil || from == nil || to == nil {
		return nil, fmt.Errorf("%w: flight requires aircraft and airports", ErrValidation)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: flight duration must be positive", ErrValidation)
	}
	if firstClassPrice.IsNegative() || economyClassPrice.IsNegative() {
		return nil, fmt.Errorf("%w: flight prices must be non-negative", ErrValidation)
	}

	f := &Flight{
		Entity:            NewEntity(actor),
		number:            number,
		aircraft:          aircraft,
		departure:         departure,
		arrival:           departure.Add(duration),
		duration:          duration,
		from:              from,
		to:                to,
		firstClassPrice:   firstClassPrice,
		economyClassPrice: economyClassPrice,
		seats:             newSeatMap(actor),
		status:            FlightOpen,
	}

	next := 1
	for _, class := range []CabinClass{CabinFirst, CabinEconomy} {
		for i := 0; i < aircraft.SeatCount(class); i++ {
			seat, err := NewSeat(actor, aircraft, next, class)
			if err != nil {
				return nil, err
			}
			f.seats.add(seat)
			next++
		}
	}
	return f, nil
}

func (f *Flight) Number() string          { return f.number }
func (f *Flight) Aircraft() *Aircraft     { return f.aircraft }
func (f *Flight) Departure() time.Time    { return f.departure }
func (f *Flight) Arrival() time.Time      { return f.arrival }
func (f *Flight) Duration() time.Duration { return f.duration }
func (f *Flight) From() *Airport          { return f.from }
func (f *Flight) To() *Airport            { return f.to }
func (f *Flight) Seats() *SeatMap         { return f.seats }

func (f *Flight) FirstClassPrice() decimal.Decimal   { return f.firstClassPrice }
func (f *Flight) EconomyClassPrice() decimal.Decimal { return f.economyClassPrice }

// PriceFor returns the seat price for class.
func (f *Flight) PriceFor(class CabinClass) (decimal.Decimal, error) {
	switch class {
	case CabinFirst:
		return f.firstClassPrice, nil
	case CabinEconomy:
		return f.economyClassPrice, nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q on flight %s", ErrInvalidClassMapping, class, f.number)
}

func (f *Flight) Status() FlightStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// SetStatus is the administrative override. Regressions are rejected;
// setting the current status again is a no-op.
func (f *Flight) SetStatus(actor uuid.UUID, status FlightStatus) error {
	if _, err := ParseFlightStatus(string(status)); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if status.rank() < f.status.rank() {
		return fmt.Errorf("%w: flight %s cannot move %s -> %s", ErrInvalidTransition, f.number, f.status, status)
	}
	if status == f.status {
		return nil
	}
	f.status = status
	f.Touch(actor)
	return nil
}

// Depart moves the flight OPEN -> DEPARTED. It reports whether the
// transition happened, so duplicate or late deadline firings are no-ops.
func (f *Flight) Depart(actor uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status != FlightOpen {
		return false
	}
	f.status = FlightDeparted
	f.Touch(actor)
	return true
}

// Close moves the flight to CLOSED. The arrival handler always departs the
// flight first; Close itself only guards against double firing.
func (f *Flight) Close(actor uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == FlightClosed {
		return false
	}
	f.status = FlightClosed
	f.Touch(actor)
	return true
}
