package intention

import (
	"errors"
	"time"

	"career-compass/internal/domain/authz"

	"github.com/google/uuid"
)

var (
	ErrAlreadyRegistered = errors.New("intention already registered")
	ErrNotPending        = errors.New("intention is not pending")
	ErrInvalidOutcome    = errors.New("invalid decision outcome")
	ErrNotFound          = errors.New("intention not found")
)

type State string

const (
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

func (s State) Valid() bool {
	switch s {
	case StatePending, StateApproved, StateRejected:
		return true
	}
	return false
}

// transitions is the closed transition table. Approved and rejected are
// terminal; the only way past rejected is registering a new intention.
var transitions = map[State]map[State]bool{
	StatePending: {StateApproved: true, StateRejected: true},
}

func (s State) CanTransition(to State) bool {
	return transitions[s][to]
}

func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

type Intention struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CourseID    uuid.UUID
	State       State
	CreatedAt   time.Time
	DecidedBy   *uuid.UUID
	DecidedRole *authz.Role
	DecidedAt   *time.Time
}

// New builds a pending intention for the pair. Uniqueness of the active
// intention per (user, course) is enforced by storage on insert.
func New(userID, courseID uuid.UUID, at time.Time) Intention {
	return Intention{
		ID:        uuid.New(),
		UserID:    userID,
		CourseID:  courseID,
		State:     StatePending,
		CreatedAt: at.UTC(),
	}
}

// Decide transitions a pending intention to the outcome, stamping who
// decided and when. Terminal states cannot be re-decided.
func (i Intention) Decide(outcome State, actorID uuid.UUID, actorRole authz.Role, at time.Time) (Intention, error) {
	if outcome != StateApproved && outcome != StateRejected {
		return Intention{}, ErrInvalidOutcome
	}
	if !i.State.CanTransition(outcome) {
		return Intention{}, ErrNotPending
	}

	decidedAt := at.UTC()
	i.State = outcome
	i.DecidedBy = &actorID
	i.DecidedRole = &actorRole
	i.DecidedAt = &decidedAt
	return i, nil
}
