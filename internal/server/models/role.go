package models

// DefaultRoleName is assigned to every newly registered user and used as
// the fallback role when a user has no role assignment.
const DefaultRoleName = "user"

// Role is a named role from the role catalog.
type Role struct {
	ID   string
	Name string
}
