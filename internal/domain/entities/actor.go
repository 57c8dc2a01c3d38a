package entities

import (
	"sort"
	"strings"
)

// Role is a capability granted to the caller by the upstream gateway.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
	RoleCustomer Role = "CUSTOMER"
)

// RoleSet is a structured set of roles. Membership is exact, never substring based.
type RoleSet map[Role]struct{}

// ParseRoleSet parses a roles header such as "ROLE_ADMIN, employee".
// Separators are commas, semicolons and whitespace. Unknown roles are dropped.
func ParseRoleSet(raw string) RoleSet {
	set := RoleSet{}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	for _, f := range fields {
		name := strings.ToUpper(strings.TrimSpace(f))
		name = strings.TrimPrefix(name, "ROLE_")
		switch r := Role(name); r {
		case RoleAdmin, RoleEmployee, RoleCustomer:
			set[r] = struct{}{}
		}
	}
	return set
}

func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// IsStaff reports whether the set grants workshop-wide visibility.
func (s RoleSet) IsStaff() bool {
	return s.HasAny(RoleAdmin, RoleEmployee)
}

func (s RoleSet) String() string {
	names := make([]string, 0, len(s))
	for r := range s {
		names = append(names, string(r))
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// Actor is the already-authenticated caller of a lifecycle operation.
type Actor struct {
	ID    string
	Roles RoleSet
}

func NewActor(id string, roles ...Role) Actor {
	return Actor{ID: id, Roles: NewRoleSet(roles...)}
}
