package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testAircraft(t *testing.T, first, economy int) *Aircraft {
	t.Helper()
	aircraft, err := NewAircraft(uuid.Nil, "Concorde", AircraftPassenger, "Aerospatiale", "BAC-203", first, economy)
	require.NoError(t, err)
	return aircraft
}

func testAirport(t *testing.T, name, code string) *Airport {
	t.Helper()
	airport, err := NewAirport(uuid.Nil, name, code)
	require.NoError(t, err)
	return airport
}

func testFlight(t *testing.T, number string, first, economy int) *Flight {
	t.Helper()
	flight, err := NewFlight(uuid.Nil, number, testAircraft(t, first, economy),
		time.Now().Add(2*time.Hour),
		testAirport(t, "Heathrow", "LHR"), testAirport(t, "Schiphol", "AMS"),
		90*time.Minute,
		decimal.RequireFromString("5000.00"), decimal.RequireFromString("1000.00"))
	require.NoError(t, err)
	return flight
}

func testPassenger(t *testing.T, foreName, surName string) *Passenger {
	t.Helper()
	birth := time.Date(1990, time.March, 12, 0, 0, 0, 0, time.UTC)
	passenger, err := NewPassenger(uuid.Nil, foreName, surName, GenderFemale, birth,
		Address{Line1: "1 Main St", City: "London", Postcode: "N1", Country: "UK"},
		Phone{CountryCode: "44", Number: "7700900123"})
	require.NoError(t, err)
	return passenger
}

func testMeal(t *testing.T, class CabinClass, description, price string) *Meal {
	t.Helper()
	meal, err := NewMeal(uuid.Nil, class, description, decimal.RequireFromString(price))
	require.NoError(t, err)
	return meal
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
