// Package auth is responsible for handling authentication and authorization logic.
// This includes user registration, login, token generation (JWT), and token validation.
// In a Nest.js analogy, this directory would correspond to an "AuthModule",
// containing services, controllers (handlers in Go), DTOs, and the guard.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/user/payroll-go/apperror"
	"github.com/user/payroll-go/users"
)

// UserRepository is the part of the credential store the auth pipeline needs.
// *users.Store satisfies it; tests use an in-memory fake.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*users.User, error)
	GetByEmail(ctx context.Context, email string) (*users.User, error)
	GetByID(ctx context.Context, id int64) (*users.User, error)
}

// LoginResult is what a successful login produces.
type LoginResult struct {
	Token string
	User  users.Profile
}

// Service provides authentication-related services.
// Dependencies are injected explicitly via the constructor.
type Service struct {
	users    UserRepository
	hasher   *Hasher
	tokens   *TokenService
	validate *validator.Validate
}

// NewService creates a new Service.
func NewService(repo UserRepository, hasher *Hasher, tokens *TokenService) *Service {
	return &Service{
		users:    repo,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Register creates a new user and returns its public fields.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*users.Profile, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, apperror.NewWeakPasswordError(fmt.Sprintf("password must be at most %d bytes long", maxPasswordBytes))
	}

	// The unique constraint is the real guard; this check only gives the common case a clear answer.
	_, err := s.users.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, apperror.NewEmailTakenError("this email is already registered", nil)
	case !errors.Is(err, users.ErrNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, req.Email, hash)
	if err != nil {
		if errors.Is(err, users.ErrEmailExists) {
			return nil, apperror.NewEmailTakenError("this email is already registered", err)
		}
		return nil, err
	}

	profile := user.Public()
	return &profile, nil
}

// Login authenticates a user and returns a signed token.
// Unknown email and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.hasher.VerifyDummy(req.Password)
			return nil, apperror.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		return nil, apperror.NewInvalidCredentialsError()
	}

	token, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user.Public()}, nil
}

// GetProfile returns the public fields of the user behind a verified token.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*users.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, apperror.NewUserNotFoundError("the user no longer exists")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	profile := user.Public()
	return &profile, nil
}

// check runs the struct tags and maps the first failure to the error taxonomy.
// A missing field wins over an overlong email, which wins over a short password.
func (s *Service) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("failed to validate request", err)
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperror.NewMissingFieldsError("email and password are required")
		}
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Email" && fe.Tag() == "max" {
			return apperror.NewBadRequestError("email must be at most 255 characters", err)
		}
	}
	return apperror.NewWeakPasswordError("password must be at least 6 characters long")
}
