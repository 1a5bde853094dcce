package users

import "time"

// Profile represents the public data returned for a user.
// It deliberately has no password field of any kind.
// @Description Public user information
type Profile struct {
	// The ID of the user
	ID int64 `json:"id" example:"1"`
	// The email address of the user
	Email string `json:"email" example:"ana@example.com"`
	// The time the user was created
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
}
