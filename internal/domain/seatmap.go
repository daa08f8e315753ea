package domain

import (
	"sync"

	"github.com/google/uuid"
)

// SeatMap owns the seats of one flight, stored in seat-number order. Seat
// reservation is the one critical section that must be atomic end to end:
// the scan for a free seat and the status flip happen under a single lock
// acquisition so two callers can never be handed the same seat.
type SeatMap struct {
	Entity

	mu    sync.RWMutex
	seats []*Seat
}

func newSeatMap(actor uuid.UUID) *SeatMap {
	return &SeatMap{Entity: NewEntity(actor)}
}

// add is only called while the owning flight is being built.
func (m *SeatMap) add(seat *Seat) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seats = append(m.seats, seat)
}

// ReserveFirstAvailable finds the first AVAILABLE seat of the requested
// class, flips it to RESERVED and returns it.
func (m *SeatMap) ReserveFirstAvailable(actor uuid.UUID, class CabinClass) (*Seat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, seat := range m.seats {
		if seat.Class() != class {
			continue
		}
		if seat.reserve(actor) {
			m.Touch(actor)
			return seat, nil
		}
	}
	return nil, ErrNoSeatAvailable
}

// ReserveByNumber reserves the specific seat, failing if it is already
// taken. Check and flip happen under the same lock as ReserveFirstAvailable.
func (m *SeatMap) ReserveByNumber(actor uuid.UUID, number int) (*Seat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, seat := range m.seats {
		if seat.Number() != number {
			continue
		}
		if !seat.reserve(actor) {
			return nil, ErrSeatAlreadyReserved
		}
		m.Touch(actor)
		return seat, nil
	}
	return nil, ErrSeatNotFound
}

// ByNumber looks a seat up without touching its status.
func (m *SeatMap) ByNumber(number int) (*Seat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, seat := range m.seats {
		if seat.Number() == number {
			return seat, nil
		}
	}
	return nil, ErrSeatNotFound
}

// AvailableOfClass returns a snapshot of the open seats of class, in
// seat-number order.
func (m *SeatMap) AvailableOfClass(class CabinClass) []*Seat {
	return m.filter(func(s *Seat) bool {
		return s.Class() == class && s.Status() == SeatAvailable
	})
}

// OfClass returns a snapshot of every seat of class regardless of status.
func (m *SeatMap) OfClass(class CabinClass) []*Seat {
	return m.filter(func(s *Seat) bool { return s.Class() == class })
}

// Available returns a snapshot of every open seat.
func (m *SeatMap) Available() []*Seat {
	return m.filter(func(s *Seat) bool { return s.Status() == SeatAvailable })
}

// Reserved returns a snapshot of every taken seat.
func (m *SeatMap) Reserved() []*Seat {
	return m.filter(func(s *Seat) bool { return s.Status() == SeatReserved })
}

// All returns a snapshot of the whole map in seat-number order.
func (m *SeatMap) All() []*Seat {
	return m.filter(func(*Seat) bool { return true })
}

// AvailableCount reports how many seats of class are still open.
func (m *SeatMap) AvailableCount(class CabinClass) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, seat := range m.seats {
		if seat.Class() == class && seat.Status() == SeatAvailable {
			n++
		}
	}
	return n
}

func (m *SeatMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.seats)
}

func (m *SeatMap) filter(pred func(*Seat) bool) []*Seat {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Seat, 0, len(m.seats))
	for _, seat := range m.seats {
		if pred(seat) {
			out = append(out, seat)
		}
	}
	return out
}
