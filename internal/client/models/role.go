package models

import "strings"

// Role is the closed set of account roles. Values outside the set may still
// appear inside a Session (the backend is never narrowed), but the guard and
// the dashboard dispatcher only ever act on these four.
type Role string

const (
	RoleFarmer      Role = "FARMER"
	RoleDistributor Role = "DISTRIBUTOR"
	RoleBuyer       Role = "BUYER"
	RoleAdmin       Role = "ADMIN"
)

// Roles lists every member of the closed set.
func Roles() []Role {
	return []Role{RoleFarmer, RoleDistributor, RoleBuyer, RoleAdmin}
}

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleDistributor, RoleBuyer, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole maps s to a Role, ignoring case and surrounding spaces.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}
