// Package auth provides authentication and authorization functionality
// This file, `dto.go` (Data Transfer Object), defines structures used for
// transferring data in API requests and responses related to authentication.
package auth

import "github.com/user/payroll-go/users"

// RegisterRequest represents the registration request payload
// `validate:"..."` tags are checked by go-playground/validator before anything touches the store.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,max=255" example:"ana@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"ana@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

// RegisterResponse is returned with 201 after a successful registration.
type RegisterResponse struct {
	Message string        `json:"message" example:"user registered successfully"`
	User    users.Profile `json:"user"`
}

// LoginResponse is returned to the client upon successful login.
type LoginResponse struct {
	Message string        `json:"message" example:"login successful"`
	Token   string        `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    users.Profile `json:"user"`
}

// ProfileResponse wraps the caller's public profile.
type ProfileResponse struct {
	User users.Profile `json:"user"`
}
