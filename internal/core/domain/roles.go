package domain

import "fmt"

// Role is the closed set of staff account roles
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleStudent   Role = "student"
)

// ParseRole validates a role string against the closed enumeration
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleLibrarian, RoleStudent:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role: %q", s)
}

// String returns the role as a string
func (r Role) String() string {
	return string(r)
}

// In reports whether the role is a member of allowed.
// Exact membership test, no hierarchy.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
