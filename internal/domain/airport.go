package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Airport is a named origin/destination endpoint for flights.
type Airport struct {
	Entity
	name string
	code string
}

func NewAirport(actor uuid.UUID, name, code string) (*Airport, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: airport name is empty", ErrValidation)
	}
	return &Airport{Entity: NewEntity(actor), name: name, code: strings.ToUpper(code)}, nil
}

func (a *Airport) Name() string { return a.name }
func (a *Airport) Code() string { return a.code }

// Airports is the register of known airports.
type Airports struct {
	*List[*Airport]
}

func NewAirports(actor uuid.UUID) *Airports {
	return &Airports{List: NewList[*Airport](actor)}
}

// ByName returns the first airport whose name starts with pattern, matched
// case-insensitively.
func (a *Airports) ByName(pattern string) (*Airport, error) {
	pat, err := prefixPattern(pattern)
	if err != nil {
		return nil, err
	}
	match, ok := a.Find(func(ap *Airport) bool {
		return strings.HasPrefix(strings.ToLower(ap.Name()), pat)
	})
	if !ok {
		return nil, fmt.Errorf("%w: airport %q", ErrNotFound, pattern)
	}
	return match, nil
}
