package domain

import "fmt"

// Role is the closed set of account roles. The integer values are part of the
// wire contract: they appear in JWT role claims and in account payloads.
type Role int

const (
	RoleAdmin Role = 0
	RoleStaff Role = 1
)

// ParseRole converts a raw integer into a Role, rejecting anything outside
// the closed set. Token verification and account validation both go through
// this so no unknown role value survives past the boundary.
func ParseRole(v int) (Role, error) {
	switch Role(v) {
	case RoleAdmin, RoleStaff:
		return Role(v), nil
	}
	return 0, fmt.Errorf("unknown role %d", v)
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleStaff:
		return "staff"
	}
	return fmt.Sprintf("role(%d)", int(r))
}
