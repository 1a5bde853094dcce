package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	// `pgx` specific imports for PostgreSQL interaction.
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/user/payroll-go/db"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailExists is returned when the email unique constraint rejects an insert.
	ErrEmailExists = errors.New("email already registered")
)

// Store persists users in PostgreSQL.
type Store struct {
	// `db` is anything that can run queries: the pool in production, pgxmock in tests.
	db      db.Querier
	timeout time.Duration
}

// NewStore creates a new Store. Every call is bounded by `timeout`.
func NewStore(q db.Querier, timeout time.Duration) *Store {
	return &Store{db: q, timeout: timeout}
}

// Create inserts a user and returns it with the store-assigned id and timestamp.
func (s *Store) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	user := &User{Email: email, PasswordHash: passwordHash}
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at`,
		email, passwordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: %w", ErrEmailExists, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user, including the password hash, by exact email match.
func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.getOne(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email)
}

// GetByID retrieves a user by id.
func (s *Store) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.getOne(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (s *Store) getOne(ctx context.Context, query string, arg any) (*User, error) {
	ctx, cancel := db.WithTimeout(ctx, s.timeout)
	defer cancel()

	var user User
	err := s.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
