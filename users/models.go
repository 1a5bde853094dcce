// Package users is the credential store: it persists user identities
// (email and password hash) and guarantees that no two users share an email.
package users

import "time"

// User represents a user in the system.
// This struct is analogous to an "Entity" in ORM terms (like TypeORM in Nest.js).
// The `json:"-"` tag on PasswordHash keeps the hash out of every JSON encoding.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose hashed password
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns the fields of the user that may leave the service.
func (u *User) Public() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
