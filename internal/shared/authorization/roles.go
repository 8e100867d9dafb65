// Package authorization holds the role model and the ownership rules shared
// by every component that decides who may see or change a record.
package authorization

import "strings"

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole accepts any casing and falls back to RoleUser for unknown input.
func ParseUserRole(s string) UserRole {
	role := UserRole(strings.ToUpper(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// CanAccessOwnedBy reports whether the actor may act on a record owned by ownerID.
// Admins implicitly own every record.
func (a Actor) CanAccessOwnedBy(ownerID uint) bool {
	return a.IsAdmin() || (a.UserID != 0 && a.UserID == ownerID)
}
