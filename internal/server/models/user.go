package models

import "time"

// User is the identity record. Email is unique at the store level; the
// password hash is the only credential material ever persisted.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithRole is the login projection: a user row joined with the name of
// its assigned role.
type UserWithRole struct {
	ID           string
	Email        string
	PasswordHash string
	RoleName     string
}
