package authz

import (
	"errors"
	"testing"
)

func TestAllowed_DecideIntention(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleUser, false},
		{RoleRH, true},
		{RoleAdmin, true},
		{Role("guest"), false},
	}
	for _, tc := range cases {
		if got := Allowed(OpDecideIntention, tc.role); got != tc.want {
			t.Fatalf("decide by %s: expected %v, got %v", tc.role, tc.want, got)
		}
	}
}

func TestAllowed_ManageCatalog_AdminOnly(t *testing.T) {
	if !Allowed(OpManageCatalog, RoleAdmin) {
		t.Fatalf("expected admin allowed")
	}
	if Allowed(OpManageCatalog, RoleRH) {
		t.Fatalf("expected rh denied")
	}
	if Allowed(OpManageCatalog, RoleUser) {
		t.Fatalf("expected user denied")
	}
}

func TestAllowed_RegisterIntention_EveryRole(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleRH, RoleAdmin} {
		if !Allowed(OpRegisterIntention, r) {
			t.Fatalf("expected %s allowed to register", r)
		}
	}
}

func TestAllowed_UnknownOperation(t *testing.T) {
	if Allowed(Operation("reports.export"), RoleAdmin) {
		t.Fatalf("expected unknown operation denied")
	}
}

func TestCheck_ReturnsErrNotAllowed(t *testing.T) {
	if err := Check(OpViewStats, RoleUser); !errors.Is(err, ErrNotAllowed) {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
	if err := Check(OpViewStats, RoleRH); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
