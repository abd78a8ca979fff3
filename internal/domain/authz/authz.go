package authz

import "errors"

var ErrNotAllowed = errors.New("role not allowed")

type Role string

const (
	RoleUser  Role = "user"
	RoleRH    Role = "rh"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleRH, RoleAdmin:
		return true
	}
	return false
}

type Operation string

const (
	OpRegisterIntention Operation = "intention.register"
	OpDecideIntention   Operation = "intention.decide"
	OpListPending       Operation = "intention.list_pending"
	OpManageCatalog     Operation = "catalog.manage"
	OpViewStats         Operation = "stats.view"
)

// table maps every state-changing or restricted operation to the roles that
// may perform it. Checked at the start of each operation instead of ad-hoc
// role conditionals.
var table = map[Operation]map[Role]bool{
	OpRegisterIntention: {RoleUser: true, RoleRH: true, RoleAdmin: true},
	OpDecideIntention:   {RoleRH: true, RoleAdmin: true},
	OpListPending:       {RoleRH: true, RoleAdmin: true},
	OpManageCatalog:     {RoleAdmin: true},
	OpViewStats:         {RoleRH: true, RoleAdmin: true},
}

func Allowed(op Operation, role Role) bool {
	roles, ok := table[op]
	if !ok {
		return false
	}
	return roles[role]
}

// Check returns ErrNotAllowed unless the role may perform the operation.
func Check(op Operation, role Role) error {
	if !Allowed(op, role) {
		return ErrNotAllowed
	}
	return nil
}
