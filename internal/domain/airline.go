package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Airline is the aggregate root handed explicitly to every service; there
// is no ambient "current airline" anywhere. It owns the registers the core
// operates on.
type Airline struct {
	Entity
	name    string
	address Address
	phone   Phone

	employees  *Employees
	passengers *Passengers
	bookings   *Bookings
	meals      *Meals
	aircrafts  *Aircrafts
	airports   *Airports
	flights    *Flights
}

func NewAirline(actor uuid.UUID, name string, address Address, phone Phone) (*Airline, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: airline name is empty", ErrValidation)
	}
	return &Airline{
		Entity:     NewEntity(actor),
		name:       name,
		address:    address,
		phone:      phone,
		employees:  NewEmployees(actor),
		passengers: NewPassengers(actor),
		bookings:   NewBookings(actor),
		meals:      NewMeals(actor),
		aircrafts:  NewAircrafts(actor),
		airports:   NewAirports(actor),
		flights:    NewFlights(actor),
	}, nil
}

func (a *Airline) Name() string            { return a.name }
func (a *Airline) AirlineAddress() Address { return a.address }
func (a *Airline) AirlinePhone() Phone     { return a.phone }

func (a *Airline) Employees() *Employees   { return a.employees }
func (a *Airline) Passengers() *Passengers { return a.passengers }
func (a *Airline) Bookings() *Bookings     { return a.bookings }
func (a *Airline) Meals() *Meals           { return a.meals }
func (a *Airline) Aircrafts() *Aircrafts   { return a.aircrafts }
func (a *Airline) Airports() *Airports     { return a.airports }
func (a *Airline) Flights() *Flights       { return a.flights }
