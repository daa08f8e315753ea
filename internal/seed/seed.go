// Package seed bootstraps an Airline aggregate from a YAML dataset. The
// core places no constraints on where the data comes from; this loader is
// the file-based collaborator the services are wired with at startup.
package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type File struct {
	Airline    AirlineSeed    `yaml:"airline"`
	Airports   []AirportSeed  `yaml:"airports"`
	Aircraft   []AircraftSeed `yaml:"aircraft"`
	Meals      []MealSeed     `yaml:"meals"`
	Passengers []PersonSeed   `yaml:"passengers"`
	Employees  []EmployeeSeed `yaml:"employees"`
	Flights    []FlightSeed   `yaml:"flights"`
}

type AirlineSeed struct {
	Name    string         `yaml:"name"`
	Address domain.Address `yaml:"address"`
	Phone   domain.Phone   `yaml:"phone"`
}

type AirportSeed struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type AircraftSeed struct {
	Name              string `yaml:"name"`
	Type              string `yaml:"type"`
	Make              string `yaml:"make"`
	Model             string `yaml:"model"`
	FirstClassSeats   int    `yaml:"first_class_seats"`
	EconomyClassSeats int    `yaml:"economy_class_seats"`
}

type MealSeed struct {
	Class       string `yaml:"class"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

type PersonSeed struct {
	ForeName  string         `yaml:"fore_name"`
	SurName   string         `yaml:"sur_name"`
	Gender    string         `yaml:"gender"`
	BirthDate string         `yaml:"birth_date"`
	Address   domain.Address `yaml:"address"`
	Phone     domain.Phone   `yaml:"phone"`
}

type EmployeeSeed struct {
	PersonSeed `yaml:",inline"`
	StartDate  string `yaml:"start_date"`
}

type FlightSeed struct {
	Number            string `yaml:"number"`
	Aircraft          string `yaml:"aircraft"`
	From              string `yaml:"from"`
	To                string `yaml:"to"`
	DepartureOffset   int    `yaml:"departure_offset_minutes"`
	DurationMinutes   int    `yaml:"duration_minutes"`
	FirstClassPrice   string `yaml:"first_class_price"`
	EconomyClassPrice string `yaml:"economy_class_price"`
}

// Load reads the seed file and builds the airline with its registers
// populated. Flight departures are expressed as offsets from load time so
// the lifecycle is observable on a fresh start.
func Load(path string, actor uuid.UUID) (*domain.Airline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return Build(file, actor, time.Now())
}

// Build assembles the aggregate from an already-parsed seed.
func Build(file File, actor uuid.UUID, now time.Time) (*domain.Airline, error) {
	airline, err := domain.NewAirline(actor, file.Airline.Name, file.Airline.Address, file.Airline.Phone)
	if err != nil {
		return nil, err
	}

	for _, a := range file.Airports {
		airport, err := domain.NewAirport(actor, a.Name, a.Code)
		if err != nil {
			return nil, fmt.Errorf("airport %q: %w", a.Name, err)
		}
		airline.Airports().Add(airport)
	}

	for _, a := range file.Aircraft {
		aircraft, err := domain.NewAircraft(actor, a.Name, domain.AircraftType(a.Type), a.Make, a.Model, a.FirstClassSeats, a.EconomyClassSeats)
		if err != nil {
			return nil, fmt.Errorf("aircraft %q: %w", a.Name, err)
		}
		airline.Aircrafts().Add(aircraft)
	}

	for _, m := range file.Meals {
		price, err := domain.ParsePrice(m.Price)
		if err != nil {
			return nil, fmt.Errorf("meal %q: %w", m.Description, err)
		}
		meal, err := domain.NewMeal(actor, domain.CabinClass(m.Class), m.Description, price)
		if err != nil {
			return nil, fmt.Errorf("meal %q: %w", m.Description, err)
		}
		airline.Meals().Add(meal)
	}

	for _, p := range file.Passengers {
		birth, err := parseDate(p.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("passenger %s %s: %w", p.ForeName, p.SurName, err)
		}
		passenger, err := domain.NewPassenger(actor, p.ForeName, p.SurName, domain.Gender(p.Gender), birth, p.Address, p.Phone)
		if err != nil {
			return nil, fmt.Errorf("passenger %s %s: %w", p.ForeName, p.SurName, err)
		}
		airline.Passengers().Add(passenger)
	}

	for _, e := range file.Employees {
		birth, err := parseDate(e.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("employee %s %s: %w", e.ForeName, e.SurName, err)
		}
		start, err := parseDate(e.StartDate)
		if err != nil {
			return nil, fmt.Errorf("employee %s %s: %w", e.ForeName, e.SurName, err)
		}
		employee, err := domain.NewEmployee(actor, e.ForeName, e.SurName, domain.Gender(e.Gender), birth, e.Address, e.Phone, start)
		if err != nil {
			return nil, fmt.Errorf("employee %s %s: %w", e.ForeName, e.SurName, err)
		}
		airline.Employees().Add(employee)
	}

	for _, f := range file.Flights {
		aircraft, err := airline.Aircrafts().ByName(f.Aircraft)
		if err != nil {
			return nil, fmt.Errorf("flight %s: %w", f.Number, err)
		}
		from, err := airline.Airports().ByName(f.From)
		if err != nil {
			return nil, fmt.Errorf("flight %s: %w", f.Number, err)
		}
		to, err := airline.Airports().ByName(f.To)
		if err != nil {
			return nil, fmt.Errorf("flight %s: %w", f.Number, err)
		}
		firstPrice, err := domain.ParsePrice(f.FirstClassPrice)
		if err != nil {
			return nil, fmt.Errorf("flight %s: %w", f.Number, err)
		}
		economyPrice, err := domain.ParsePrice(f.EconomyClassPrice)
		if err != nil {
			return nil, fmt.Errorf("flight %s: %w", f.Number, err)
		}
		departure := now.Add(time.Duration(f.DepartureOffset) * time.Minute)
		flight, err := domain.NewFlight(actor, f.Number, aircraft, departure, from, to, time.Duration(f.DurationMinutes)*time.Minute, firstPrice, economyPrice)
		if err != nil {
			return nil, fmt.Errorf("flight %s: %w", f.Number, err)
		}
		airline.Flights().Add(flight)
	}

	return airline, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", domain.ErrValidation, s)
	}
	return t, nil
}
