package domain

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatMap_ReserveFirstAvailablePicksLowestNumber(t *testing.T) {
	flight := testFlight(t, "FL100", 2, 3)
	seats := flight.Seats()

	first, err := seats.ReserveFirstAvailable(uuid.Nil, CabinEconomy)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Number())
	assert.Equal(t, SeatReserved, first.Status())

	second, err := seats.ReserveFirstAvailable(uuid.Nil, CabinEconomy)
	require.NoError(t, err)
	assert.Equal(t, 4, second.Number())

	// First class is untouched by economy reservations.
	assert.Equal(t, 2, seats.AvailableCount(CabinFirst))
	assert.Equal(t, 1, seats.AvailableCount(CabinEconomy))
}

func TestSeatMap_ReserveFirstAvailableExhaustsClass(t *testing.T) {
	flight := testFlight(t, "FL100", 1, 2)
	seats := flight.Seats()

	for i := 0; i < 2; i++ {
		_, err := seats.ReserveFirstAvailable(uuid.Nil, CabinEconomy)
		require.NoError(t, err)
	}

	_, err := seats.ReserveFirstAvailable(uuid.Nil, CabinEconomy)
	assert.ErrorIs(t, err, ErrNoSeatAvailable)

	// The other class still has its seat.
	_, err = seats.ReserveFirstAvailable(uuid.Nil, CabinFirst)
	assert.NoError(t, err)
}

func TestSeatMap_ReserveByNumber(t *testing.T) {
	flight := testFlight(t, "FL100", 1, 2)
	seats := flight.Seats()

	seat, err := seats.ReserveByNumber(uuid.Nil, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, seat.Number())

	_, err = seats.ReserveByNumber(uuid.Nil, 2)
	assert.ErrorIs(t, err, ErrSeatAlreadyReserved)

	_, err = seats.ReserveByNumber(uuid.Nil, 99)
	assert.ErrorIs(t, err, ErrSeatNotFound)
}

func TestSeatMap_Snapshots(t *testing.T) {
	flight := testFlight(t, "FL100", 2, 2)
	seats := flight.Seats()

	_, err := seats.ReserveByNumber(uuid.Nil, 1)
	require.NoError(t, err)

	assert.Len(t, seats.Available(), 3)
	require.Len(t, seats.Reserved(), 1)
	assert.Equal(t, 1, seats.Reserved()[0].Number())
	assert.Len(t, seats.OfClass(CabinFirst), 2)
	assert.Len(t, seats.AvailableOfClass(CabinFirst), 1)

	seat, err := seats.ByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, SeatReserved, seat.Status())
}

// Many callers racing for a small class must each get a distinct seat, and
// exactly classSize of them may win.
func TestSeatMap_ConcurrentReservationsNeverDoubleBook(t *testing.T) {
	const economySeats = 5
	const callers = 30

	flight := testFlight(t, "FL100", 2, economySeats)
	seats := flight.Seats()

	var mu sync.Mutex
	won := make(map[int]int)
	losses := 0

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seat, err := seats.ReserveFirstAvailable(uuid.Nil, CabinEconomy)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, ErrNoSeatAvailable)
				losses++
				return
			}
			won[seat.Number()]++
		}()
	}
	wg.Wait()

	assert.Len(t, won, economySeats)
	for number, count := range won {
		assert.Equal(t, 1, count, "seat %d handed out more than once", number)
	}
	assert.Equal(t, callers-economySeats, losses)
	assert.Equal(t, 0, seats.AvailableCount(CabinEconomy))
}
