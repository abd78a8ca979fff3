package intention

import (
	"errors"
	"testing"
	"time"

	"career-compass/internal/domain/authz"

	"github.com/google/uuid"
)

func TestState_TransitionTable(t *testing.T) {
	cases := []struct {
		from State
		to   State
		want bool
	}{
		{StatePending, StateApproved, true},
		{StatePending, StateRejected, true},
		{StatePending, StatePending, false},
		{StateApproved, StateRejected, false},
		{StateApproved, StatePending, false},
		{StateRejected, StateApproved, false},
		{StateRejected, StatePending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestState_Terminal(t *testing.T) {
	if StatePending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
	if !StateApproved.Terminal() || !StateRejected.Terminal() {
		t.Fatalf("approved and rejected must be terminal")
	}
}

func TestNew_IsPending(t *testing.T) {
	i := New(uuid.New(), uuid.New(), time.Now())
	if i.State != StatePending {
		t.Fatalf("expected pending, got %v", i.State)
	}
	if i.DecidedBy != nil || i.DecidedAt != nil {
		t.Fatalf("expected no decision stamps on a fresh intention")
	}
}

func TestDecide_Approve(t *testing.T) {
	i := New(uuid.New(), uuid.New(), time.Now())
	actor := uuid.New()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	decided, err := i.Decide(StateApproved, actor, authz.RoleRH, at)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if decided.State != StateApproved {
		t.Fatalf("expected approved, got %v", decided.State)
	}
	if decided.DecidedBy == nil || *decided.DecidedBy != actor {
		t.Fatalf("expected decided_by recorded")
	}
	if decided.DecidedRole == nil || *decided.DecidedRole != authz.RoleRH {
		t.Fatalf("expected decided_role recorded")
	}
	if decided.DecidedAt == nil || !decided.DecidedAt.Equal(at) {
		t.Fatalf("expected decided_at recorded")
	}
}

func TestDecide_OnTerminalFails(t *testing.T) {
	i := New(uuid.New(), uuid.New(), time.Now())
	approved, err := i.Decide(StateApproved, uuid.New(), authz.RoleAdmin, time.Now())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := approved.Decide(StateRejected, uuid.New(), authz.RoleAdmin, time.Now()); !errors.Is(err, ErrNotPending) {
		t.Fatalf("expected ErrNotPending, got %v", err)
	}
}

func TestDecide_InvalidOutcome(t *testing.T) {
	i := New(uuid.New(), uuid.New(), time.Now())
	if _, err := i.Decide(StatePending, uuid.New(), authz.RoleRH, time.Now()); !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
	if _, err := i.Decide(State("done"), uuid.New(), authz.RoleRH, time.Now()); !errors.Is(err, ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
}
