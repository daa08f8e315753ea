package booking

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

type fixture struct {
	airline   *domain.Airline
	flight    *domain.Flight
	passenger *domain.Passenger
	meal      *domain.Meal
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	airline, err := domain.NewAirline(uuid.Nil, "Acme Air", domain.Address{}, domain.Phone{})
	require.NoError(t, err)

	aircraft, err := domain.NewAircraft(uuid.Nil, "Concorde", domain.AircraftPassenger, "Aerospatiale", "BAC-203", 1, 2)
	require.NoError(t, err)
	airline.Aircrafts().Add(aircraft)

	from, err := domain.NewAirport(uuid.Nil, "Heathrow", "LHR")
	require.NoError(t, err)
	to, err := domain.NewAirport(uuid.Nil, "Schiphol", "AMS")
	require.NoError(t, err)
	airline.Airports().Add(from)
	airline.Airports().Add(to)

	flight, err := domain.NewFlight(uuid.Nil, "FL100", aircraft, time.Now().Add(2*time.Hour), from, to, 90*time.Minute,
		decimal.RequireFromString("5000.00"), decimal.RequireFromString("1000.00"))
	require.NoError(t, err)
	airline.Flights().Add(flight)

	passenger, err := domain.NewPassenger(uuid.Nil, "Maya", "Ivanova", domain.GenderFemale,
		time.Date(1990, 3, 12, 0, 0, 0, 0, time.UTC), domain.Address{}, domain.Phone{})
	require.NoError(t, err)
	airline.Passengers().Add(passenger)

	meal, err := domain.NewMeal(uuid.Nil, domain.CabinFirst, "Lobster", decimal.RequireFromString("1.50"))
	require.NoError(t, err)
	airline.Meals().Add(meal)

	return fixture{airline: airline, flight: flight, passenger: passenger, meal: meal}
}

func (f fixture) input(class string) CreateBookingInput {
	return CreateBookingInput{
		FlightNumber: "FL100",
		PassengerID:  f.passenger.ID().String(),
		CabinClass:   class,
		MealID:       f.meal.ID().String(),
	}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	fx := newFixture(t)
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}
	service := NewBookingService(fx.airline, nil,
		WithCache(mockCache),
		WithProducer(mockProducer, "booking_topic"),
		WithNotificationsTopic("notifications_topic"),
	)
	ctx := context.Background()

	mockCache.On("InvalidateFlights", ctx).Return(nil).Once()
	mockProducer.On("Publish", ctx, "booking_topic", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications_topic", mock.Anything, mock.Anything).Return(nil).Once()

	created, err := service.CreateBooking(ctx, fx.input("FIRST"))
	require.NoError(t, err)

	assert.Equal(t, domain.BookingConfirmed, created.Status())
	assert.Equal(t, 1, created.Seat().Number())
	assert.Equal(t, "5001.50", created.Total().StringFixed(2))
	assert.Equal(t, "3501.05", created.Cost().StringFixed(2))
	assert.Equal(t, "1500.45", created.Profit().StringFixed(2))

	assert.Equal(t, 1, fx.airline.Bookings().Len())
	assert.Equal(t, 0, fx.flight.Seats().AvailableCount(domain.CabinFirst))

	mockCache.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CreateBooking_BadInput(t *testing.T) {
	fx := newFixture(t)
	service := NewBookingService(fx.airline, nil)
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{
			name:   "Unknown cabin class",
			mutate: func(in *CreateBookingInput) { in.CabinClass = "BUSINESS" },
		},
		{
			name:   "Malformed passenger id",
			mutate: func(in *CreateBookingInput) { in.PassengerID = "not-a-uuid" },
		},
		{
			name:   "Malformed meal id",
			mutate: func(in *CreateBookingInput) { in.MealID = "42" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := fx.input("FIRST")
			tc.mutate(&input)
			created, err := service.CreateBooking(ctx, input)
			assert.Nil(t, created)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	assert.Equal(t, 0, fx.airline.Bookings().Len())
}

func TestBookingService_CreateBooking_UnknownReferences(t *testing.T) {
	fx := newFixture(t)
	service := NewBookingService(fx.airline, nil)
	ctx := context.Background()

	input := fx.input("FIRST")
	input.FlightNumber = "FL404"
	_, err := service.CreateBooking(ctx, input)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	input = fx.input("FIRST")
	input.PassengerID = uuid.NewString()
	_, err = service.CreateBooking(ctx, input)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	input = fx.input("FIRST")
	input.MealID = uuid.NewString()
	_, err = service.CreateBooking(ctx, input)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_CreateBooking_FlightNotOpen(t *testing.T) {
	fx := newFixture(t)
	service := NewBookingService(fx.airline, nil)

	require.True(t, fx.flight.Depart(uuid.Nil))

	created, err := service.CreateBooking(context.Background(), fx.input("FIRST"))
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, fx.flight.Seats().AvailableCount(domain.CabinFirst))
}

func TestBookingService_CreateBooking_SoldOut(t *testing.T) {
	fx := newFixture(t)
	service := NewBookingService(fx.airline, nil)
	ctx := context.Background()

	_, err := service.CreateBooking(ctx, fx.input("FIRST"))
	require.NoError(t, err)

	created, err := service.CreateBooking(ctx, fx.input("FIRST"))
	assert.Nil(t, created)
	assert.ErrorIs(t, err, domain.ErrNoSeatAvailable)
	assert.Equal(t, 1, fx.airline.Bookings().Len())
}

func TestBookingService_ListByStatus(t *testing.T) {
	fx := newFixture(t)
	service := NewBookingService(fx.airline, nil)
	ctx := context.Background()

	created, err := service.CreateBooking(ctx, fx.input("FIRST"))
	require.NoError(t, err)

	confirmed, err := service.ListByStatus(ctx, domain.BookingConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed, 1)
	assert.Equal(t, created.ID(), confirmed[0].ID())

	closed, err := service.ListByStatus(ctx, domain.BookingClosed)
	require.NoError(t, err)
	assert.Empty(t, closed)

	_, err = service.ListByStatus(ctx, domain.BookingStatus("PENDING"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Totals(t *testing.T) {
	fx := newFixture(t)
	service := NewBookingService(fx.airline, nil)
	ctx := context.Background()

	// An empty ledger sums to zero.
	totals, err := service.Totals(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "0.00", totals.Price.StringFixed(2))
	assert.Equal(t, "0.00", totals.Cost.StringFixed(2))
	assert.Equal(t, "0.00", totals.Profit.StringFixed(2))

	_, err = service.CreateBooking(ctx, fx.input("FIRST"))
	require.NoError(t, err)
	economy := fx.input("ECONOMY")
	freeMeals := fx.airline.Meals().OfClass(domain.CabinEconomy)
	require.NotEmpty(t, freeMeals)
	economy.MealID = freeMeals[0].ID().String()
	_, err = service.CreateBooking(ctx, economy)
	require.NoError(t, err)

	totals, err = service.Totals(ctx, "")
	require.NoError(t, err)
	// 5001.50 + 1000.00
	assert.Equal(t, "6001.50", totals.Price.StringFixed(2))
	// 3501.05 + 700.00
	assert.Equal(t, "4201.05", totals.Cost.StringFixed(2))
	// 1500.45 + 300.00
	assert.Equal(t, "1800.45", totals.Profit.StringFixed(2))
	assert.True(t, totals.Cost.Add(totals.Profit).Equal(totals.Price))

	perFlight, err := service.Totals(ctx, "FL100")
	require.NoError(t, err)
	assert.Equal(t, totals.Price, perFlight.Price)

	_, err = service.Totals(ctx, "FL404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
