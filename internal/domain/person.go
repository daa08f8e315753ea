package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
	GenderOther  Gender = "OTHER"
)

// Address is a postal address value object.
type Address struct {
	Line1    string `yaml:"line1" json:"line1"`
	City     string `yaml:"city" json:"city"`
	Postcode string `yaml:"postcode" json:"postcode"`
	Country  string `yaml:"country" json:"country"`
}

// Phone is a phone number value object.
type Phone struct {
	CountryCode string `yaml:"country_code" json:"country_code"`
	Number      string `yaml:"number" json:"number"`
}

// Person carries the fields shared by passengers and employees. Name,
// gender and birth date are fixed; contact details may change.
type Person struct {
	Entity
	foreName  string
	surName   string
	gender    Gender
	birthDate time.Time

	mu      sync.Mutex
	address Address
	phone   Phone
}

func newPerson(actor uuid.UUID, foreName, surName string, gender Gender, birthDate time.Time, address Address, phone Phone) (Person, error) {
	if strings.TrimSpace(foreName) == "" || strings.TrimSpace(surName) == "" {
		return Person{}, fmt.Errorf("%w: person requires forename and surname", ErrValidation)
	}
	return Person{
		Entity:    NewEntity(actor),
		foreName:  foreName,
		surName:   surName,
		gender:    gender,
		birthDate: birthDate,
		address:   address,
		phone:     phone,
	}, nil
}

func (p *Person) ForeName() string     { return p.foreName }
func (p *Person) SurName() string      { return p.surName }
func (p *Person) Name() string         { return p.foreName + " " + p.surName }
func (p *Person) Gender() Gender       { return p.gender }
func (p *Person) BirthDate() time.Time { return p.birthDate }

func (p *Person) Address() Address {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.address
}

func (p *Person) SetAddress(actor uuid.UUID, address Address) {
	p.mu.Lock()
	p.address = address
	p.mu.Unlock()
	p.Touch(actor)
}

func (p *Person) Phone() Phone {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phone
}

func (p *Person) SetPhone(actor uuid.UUID, phone Phone) {
	p.mu.Lock()
	p.phone = phone
	p.mu.Unlock()
	p.Touch(actor)
}

// Passenger is a person who can hold bookings.
type Passenger struct {
	Person
}

func NewPassenger(actor uuid.UUID, foreName, surName string, gender Gender, birthDate time.Time, address Address, phone Phone) (*Passenger, error) {
	person, err := newPerson(actor, foreName, surName, gender, birthDate, address, phone)
	if err != nil {
		return nil, err
	}
	return &Passenger{Person: person}, nil
}

// Passengers is the airline's passenger register.
type Passengers struct {
	*List[*Passenger]
}

func NewPassengers(actor uuid.UUID) *Passengers {
	return &Passengers{List: NewList[*Passenger](actor)}
}

// ByName returns the first passenger whose full name starts with pattern,
// matched case-insensitively.
func (p *Passengers) ByName(pattern string) (*Passenger, error) {
	pat, err := prefixPattern(pattern)
	if err != nil {
		return nil, err
	}
	match, ok := p.Find(func(pas *Passenger) bool {
		return strings.HasPrefix(strings.ToLower(pas.Name()), pat)
	})
	if !ok {
		return nil, fmt.Errorf("%w: passenger %q", ErrNotFound, pattern)
	}
	return match, nil
}

// ByID returns the passenger with the given id.
func (p *Passengers) ByID(id uuid.UUID) (*Passenger, error) {
	match, ok := p.Find(func(pas *Passenger) bool { return pas.ID() == id })
	if !ok {
		return nil, fmt.Errorf("%w: passenger %s", ErrNotFound, id)
	}
	return match, nil
}

type EmployeeStatus string

const (
	EmployeeHired    EmployeeStatus = "HIRED"
	EmployeeReleased EmployeeStatus = "RELEASED"
)

// Employee is a person on the airline's payroll.
type Employee struct {
	Person
	login     string
	startDate time.Time

	mu      sync.Mutex
	endDate time.Time
	status  EmployeeStatus
}

func NewEmployee(actor uuid.UUID, foreName, surName string, gender Gender, birthDate time.Time, address Address, phone Phone, startDate time.Time) (*Employee, error) {
	person, err := newPerson(actor, foreName, surName, gender, birthDate, address, phone)
	if err != nil {
		return nil, err
	}
	return &Employee{
		Person:    person,
		login:     strings.ToLower(surName + "." + foreName[:1]),
		startDate: startDate,
		status:    EmployeeHired,
	}, nil
}

func (e *Employee) Login() string        { return e.login }
func (e *Employee) StartDate() time.Time { return e.startDate }

func (e *Employee) Status() EmployeeStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Employee) EndDate() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.endDate
}

// Release ends the employment, recording the end date.
func (e *Employee) Release(actor uuid.UUID, endDate time.Time) {
	e.mu.Lock()
	e.endDate = endDate
	e.status = EmployeeReleased
	e.mu.Unlock()
	e.Touch(actor)
}

// Employees is the airline's staff register.
type Employees struct {
	*List[*Employee]
}

func NewEmployees(actor uuid.UUID) *Employees {
	return &Employees{List: NewList[*Employee](actor)}
}

// ByName returns the first employee whose full name starts with pattern,
// matched case-insensitively.
func (e *Employees) ByName(pattern string) (*Employee, error) {
	pat, err := prefixPattern(pattern)
	if err != nil {
		return nil, err
	}
	match, ok := e.Find(func(emp *Employee) bool {
		return strings.HasPrefix(strings.ToLower(emp.Name()), pat)
	})
	if !ok {
		return nil, fmt.Errorf("%w: employee %q", ErrNotFound, pattern)
	}
	return match, nil
}

// prefixPattern normalizes a lookup pattern for case-insensitive prefix
// matching.
func prefixPattern(pattern string) (string, error) {
	p := strings.TrimSpace(pattern)
	if p == "" {
		return "", fmt.Errorf("%w: empty lookup pattern", ErrValidation)
	}
	return strings.ToLower(p), nil
}
