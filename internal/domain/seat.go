package domain

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

type CabinClass string

const (
	CabinFirst   CabinClass = "FIRST"
	CabinEconomy CabinClass = "ECONOMY"
)

func ParseCabinClass(s string) (CabinClass, error) {
	switch CabinClass(s) {
	case CabinFirst, CabinEconomy:
		return CabinClass(s), nil
	}
	return "", fmt.Errorf("%w: unknown cabin class %q", ErrValidation, s)
}

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatReserved  SeatStatus = "RESERVED"
)

const (
	seatStateAvailable int32 = iota
	seatStateReserved
)

// Seat is a single bookable unit on a flight. The cabin class is fixed at
// construction; the status only ever moves AVAILABLE -> RESERVED. Status
// mutation happens exclusively through the owning SeatMap.
type Seat struct {
	Entity
	number   int
	aircraft *Aircraft
	class    CabinClass
	state    atomic.Int32
}

func NewSeat(actor uuid.UUID, aircraft *Aircraft, number int, class CabinClass) (*Seat, error) {
	if aircraft == nil {
		return nil, fmt.Errorf("%w: seat requires an aircraft", ErrValidation)
	}
	if number < 1 {
		return nil, fmt.Errorf("%w: seat number must be >= 1, got %d", ErrValidation, number)
	}
	if _, err := ParseCabinClass(string(class)); err != nil {
		return nil, err
	}
	return &Seat{
		Entity:   NewEntity(actor),
		number:   number,
		aircraft: aircraft,
		class:    class,
	}, nil
}

func (s *Seat) Number() int         { return s.number }
func (s *Seat) Aircraft() *Aircraft { return s.aircraft }
func (s *Seat) Class() CabinClass   { return s.class }

func (s *Seat) Status() SeatStatus {
	if s.state.Load() == seatStateReserved {
		return SeatReserved
	}
	return SeatAvailable
}

// reserve flips the seat to RESERVED. Callers hold the SeatMap lock; the
// atomic store keeps unlocked readers from seeing a torn status.
func (s *Seat) reserve(actor uuid.UUID) bool {
	if !s.state.CompareAndSwap(seatStateAvailable, seatStateReserved) {
		return false
	}
	s.Touch(actor)
	return true
}
