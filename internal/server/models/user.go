// Package models holds the persistence-layer data structures shared by
// repositories and services.
package models

import "time"

// User is a registered account. Email lookup is case-insensitive; the
// password hash is only ever overwritten as a whole, never merged.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// HasRole reports whether the user was granted the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
