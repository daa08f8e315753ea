package domain

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Meal is an onboard meal option for one cabin class. The price may be
// revised; class and description are fixed.
type Meal struct {
	Entity
	class       CabinClass
	description string

	mu    sync.Mutex
	price decimal.Decimal
}

func NewMeal(actor uuid.UUID, class CabinClass, description string, price decimal.Decimal) (*Meal, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: meal description is empty", ErrValidation)
	}
	if _, err := ParseCabinClass(string(class)); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: meal price is negative", ErrValidation)
	}
	return &Meal{Entity: NewEntity(actor), class: class, description: description, price: price}, nil
}

func (m *Meal) Class() CabinClass   { return m.class }
func (m *Meal) Description() string { return m.description }

func (m *Meal) Price() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.price
}

func (m *Meal) SetPrice(actor uuid.UUID, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: meal price is negative", ErrValidation)
	}
	m.mu.Lock()
	m.price = price
	m.mu.Unlock()
	m.Touch(actor)
	return nil
}

// Meals is the airline's meal catalogue. It always contains a zero-price
// "None" option per cabin class so every booking can reference a meal.
type Meals struct {
	*List[*Meal]
}

func NewMeals(actor uuid.UUID) *Meals {
	meals := &Meals{List: NewList[*Meal](actor)}
	for _, class := range []CabinClass{CabinEconomy, CabinFirst} {
		none, err := NewMeal(actor, class, "None", decimal.Zero)
		if err != nil {
			// The static arguments are known good.
			panic(err)
		}
		meals.Add(none)
	}
	return meals
}

// OfClass returns a snapshot of the meals offered in class.
func (m *Meals) OfClass(class CabinClass) []*Meal {
	return m.Filter(func(meal *Meal) bool { return meal.Class() == class })
}

// ByDescription returns the first meal whose description starts with
// pattern, matched case-insensitively.
func (m *Meals) ByDescription(pattern string) (*Meal, error) {
	pat, err := prefixPattern(pattern)
	if err != nil {
		return nil, err
	}
	match, ok := m.Find(func(meal *Meal) bool {
		return strings.HasPrefix(strings.ToLower(meal.Description()), pat)
	})
	if !ok {
		return nil, fmt.Errorf("%w: meal %q", ErrNotFound, pattern)
	}
	return match, nil
}

// ByID returns the meal with the given id.
func (m *Meals) ByID(id uuid.UUID) (*Meal, error) {
	match, ok := m.Find(func(meal *Meal) bool { return meal.ID() == id })
	if !ok {
		return nil, fmt.Errorf("%w: meal %s", ErrNotFound, id)
	}
	return match, nil
}
