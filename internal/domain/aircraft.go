package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type AircraftType string

const (
	AircraftPassenger AircraftType = "PASSENGER"
	AircraftCargo     AircraftType = "CARGO"
)

// Aircraft is a cabin layout: how many seats of each class a flight built
// on it gets. All fields are fixed at construction.
type Aircraft struct {
	Entity
	name              string
	typ               AircraftType
	make              string
	model             string
	firstClassSeats   int
	economyClassSeats int
}

func NewAircraft(actor uuid.UUID, name string, typ AircraftType, make, model string, firstClassSeats, economyClassSeats int) (*Aircraft, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: aircraft name is empty", ErrValidation)
	}
	if strings.TrimSpace(make) == "" || strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("%w: aircraft make/model is empty", ErrValidation)
	}
	if firstClassSeats < 0 || economyClassSeats < 0 {
		return nil, fmt.Errorf("%w: seat counts must be >= 0", ErrValidation)
	}
	return &Aircraft{
		Entity:            NewEntity(actor),
		name:              name,
		typ:               typ,
		make:              make,
		model:             model,
		firstClassSeats:   firstClassSeats,
		economyClassSeats: economyClassSeats,
	}, nil
}

func (a *Aircraft) Name() string           { return a.name }
func (a *Aircraft) Type() AircraftType     { return a.typ }
func (a *Aircraft) Make() string           { return a.make }
func (a *Aircraft) Model() string          { return a.model }
func (a *Aircraft) FirstClassSeats() int   { return a.firstClassSeats }
func (a *Aircraft) EconomyClassSeats() int { return a.economyClassSeats }

// SeatCount returns the configured seat count for class.
func (a *Aircraft) SeatCount(class CabinClass) int {
	if class == CabinFirst {
		return a.firstClassSeats
	}
	return a.economyClassSeats
}

// Aircrafts is the airline's fleet register.
type Aircrafts struct {
	*List[*Aircraft]
}

func NewAircrafts(actor uuid.UUID) *Aircrafts {
	return &Aircrafts{List: NewList[*Aircraft](actor)}
}

// ByName returns the first aircraft whose name starts with pattern, matched
// case-insensitively.
func (a *Aircrafts) ByName(pattern string) (*Aircraft, error) {
	pat, err := prefixPattern(pattern)
	if err != nil {
		return nil, err
	}
	match, ok := a.Find(func(ac *Aircraft) bool {
		return strings.HasPrefix(strings.ToLower(ac.Name()), pat)
	})
	if !ok {
		return nil, fmt.Errorf("%w: aircraft %q", ErrNotFound, pattern)
	}
	return match, nil
}
