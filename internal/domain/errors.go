package domain

import "errors"

var (
	// ErrValidation covers bad constructor arguments: empty strings,
	// negative counts, nil references.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned by lookups that miss.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateIdentity is reported when an element with the same id is
	// already present in a collection.
	ErrDuplicateIdentity = errors.New("duplicate identity")

	// ErrIndexOutOfRange is returned by positional removal with a bad index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoSeatAvailable means no seat of the requested class is open.
	ErrNoSeatAvailable = errors.New("no seat available")

	// ErrSeatAlreadyReserved means the requested seat was taken by the time
	// the reservation ran.
	ErrSeatAlreadyReserved = errors.New("seat already reserved")

	// ErrSeatNotFound means the seat number does not exist on the flight.
	ErrSeatNotFound = errors.New("seat not found")

	// ErrInvalidTransition rejects a backward or otherwise illegal status
	// change. It indicates an ordering defect and is never retried.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidClassMapping means the seat's cabin class has no price on
	// the flight.
	ErrInvalidClassMapping = errors.New("no price for cabin class")

	// ErrRoundingInvariant is a fatal pricing defect: cost + profit did not
	// reproduce the total exactly.
	ErrRoundingInvariant = errors.New("pricing rounding invariant violated")
)
