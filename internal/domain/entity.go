package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Nobody is the actor recorded when no user is attached to an operation.
var Nobody = uuid.New()

// Entity is the audited identity base embedded by every core object.
// The id is assigned once at construction; the modified stamp only moves
// forward.
type Entity struct {
	id        uuid.UUID
	created   time.Time
	createdBy uuid.UUID

	mu         sync.Mutex
	modified   time.Time
	modifiedBy uuid.UUID
}

// Identified is anything carrying an entity id. List keys uniqueness on it.
type Identified interface {
	ID() uuid.UUID
}

func NewEntity(actor uuid.UUID) Entity {
	if actor == uuid.Nil {
		actor = Nobody
	}
	return Entity{
		id:         uuid.New(),
		created:    time.Now(),
		createdBy:  actor,
		modifiedBy: actor,
	}
}

func (e *Entity) ID() uuid.UUID        { return e.id }
func (e *Entity) Created() time.Time   { return e.created }
func (e *Entity) CreatedBy() uuid.UUID { return e.createdBy }

func (e *Entity) Modified() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.modified
}

func (e *Entity) ModifiedBy() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.modifiedBy
}

// Touch records a state change by actor. The modified timestamp never goes
// backwards even if the wall clock does.
func (e *Entity) Touch(actor uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := time.Now()
	if now.After(e.modified) {
		e.modified = now
	}
	if actor != uuid.Nil {
		e.modifiedBy = actor
	}
}
