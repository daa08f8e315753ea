package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Flights is the airline's flight register.
type Flights struct {
	*List[*Flight]
}

func NewFlights(actor uuid.UUID) *Flights {
	return &Flights{List: NewList[*Flight](actor)}
}

// ByNumber returns the first flight whose number starts with pattern,
// matched case-insensitively.
func (f *Flights) ByNumber(pattern string) (*Flight, error) {
	pat, err := prefixPattern(pattern)
	if err != nil {
		return nil, err
	}
	match, ok := f.Find(func(fl *Flight) bool {
		return strings.HasPrefix(strings.ToLower(fl.Number()), pat)
	})
	if !ok {
		return nil, fmt.Errorf("%w: flight %q", ErrNotFound, pattern)
	}
	return match, nil
}

// ByStatus returns a snapshot of the flights currently in status.
func (f *Flights) ByStatus(status FlightStatus) []*Flight {
	return f.Filter(func(fl *Flight) bool { return fl.Status() == status })
}

// Open returns a snapshot of the flights still taking bookings.
func (f *Flights) Open() []*Flight { return f.ByStatus(FlightOpen) }

// Departed returns a snapshot of the flights in the air.
func (f *Flights) Departed() []*Flight { return f.ByStatus(FlightDeparted) }

// Closed returns a snapshot of the flights that have arrived.
func (f *Flights) Closed() []*Flight { return f.ByStatus(FlightClosed) }
