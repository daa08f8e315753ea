package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bookings is the airline's booking ledger. All derived views are
// snapshots; the sums are exact decimal folds and an empty ledger sums to
// zero.
type Bookings struct {
	*List[*Booking]
}

func NewBookings(actor uuid.UUID) *Bookings {
	return &Bookings{List: NewList[*Booking](actor)}
}

// ByStatus returns a snapshot of the bookings currently in status.
func (b *Bookings) ByStatus(status BookingStatus) []*Booking {
	return b.Filter(func(bk *Booking) bool { return bk.Status() == status })
}

// Confirmed returns a snapshot of the open bookings.
func (b *Bookings) Confirmed() []*Booking { return b.ByStatus(BookingConfirmed) }

// Closed returns a snapshot of the closed bookings.
func (b *Bookings) Closed() []*Booking { return b.ByStatus(BookingClosed) }

// ByFlightNumber returns a snapshot of the bookings on the given flight.
func (b *Bookings) ByFlightNumber(number string) []*Booking {
	return b.Filter(func(bk *Booking) bool { return bk.Flight().Number() == number })
}

// SumTotal folds the total price over a snapshot of the ledger.
func (b *Bookings) SumTotal() decimal.Decimal {
	return b.sum(func(bk *Booking) decimal.Decimal { return bk.Total() })
}

// SumCost folds the operating cost over a snapshot of the ledger.
func (b *Bookings) SumCost() decimal.Decimal {
	return b.sum(func(bk *Booking) decimal.Decimal { return bk.Cost() })
}

// SumProfit folds the profit over a snapshot of the ledger.
func (b *Bookings) SumProfit() decimal.Decimal {
	return b.sum(func(bk *Booking) decimal.Decimal { return bk.Profit() })
}

func (b *Bookings) sum(value func(*Booking) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, bk := range b.All() {
		total = total.Add(value(bk))
	}
	return total
}

// CloseConfirmedForFlight closes every CONFIRMED booking on the flight and
// returns the bookings that changed. The departure handler calls this
// before the flight's own status flips to DEPARTED.
func (b *Bookings) CloseConfirmedForFlight(actor uuid.UUID, number string) []*Booking {
	closed := make([]*Booking, 0)
	for _, bk := range b.ByFlightNumber(number) {
		if bk.Status() != BookingConfirmed {
			continue
		}
		if err := bk.Close(actor); err == nil {
			closed = append(closed, bk)
		}
	}
	return closed
}
