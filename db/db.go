// Package db provides database connectivity and migration functionality for the payroll service.
// It handles establishing the connection pool, bounding individual store calls with a
// timeout, and running the embedded schema migrations.
// This package centralizes database concerns, similar to how a database module (e.g., TypeORMModule)
// would be configured in Nest.js, providing a pool to the rest of the application.
package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	// `golang-migrate` is a popular library for database migrations in Go.
	"github.com/golang-migrate/migrate/v4"
	// The postgres database driver registers the "postgres://" scheme (it uses lib/pq underneath).
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	// `iofs` reads migrations from an fs.FS, here the files embedded into the binary.
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	// `pgxpool` is part of the `jackc/pgx` suite, providing a robust connection pool for PostgreSQL.
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/payroll-go/apperror"
	"github.com/user/payroll-go/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Querier is the subset of pgx used by the stores.
// *pgxpool.Pool, pgx.Tx and pgxmock pools all satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pinger is implemented by *pgxpool.Pool; the health endpoint uses it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewPool establishes the PostgreSQL connection pool using the provided configuration.
// The caller owns the pool and must Close it on shutdown.
func NewPool(ctx context.Context, cfg *config.PoolConfig) (*pgxpool.Pool, error) {
	// `pgxpool.ParseConfig` parses the DSN string into a `pgxpool.Config` struct.
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, apperror.NewInternalError(fmt.Sprintf("error parsing DSN for database %s", cfg.DBName), err)
	}

	poolConfig.MaxConns = int32(cfg.MaxSize)
	poolConfig.MaxConnIdleTime = 10 * time.Minute
	poolConfig.MaxConnLifetime = 30 * time.Minute

	// Use a context with a timeout for the pool creation process.
	// This prevents indefinite blocking if the database is unreachable.
	createCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(createCtx, poolConfig)
	if err != nil {
		return nil, apperror.NewInternalError(fmt.Sprintf("error creating pgxpool for database %s", cfg.DBName), err)
	}

	// Verify the connection by pinging
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close() // Clean up on connection failure
		return nil, apperror.NewInternalError(fmt.Sprintf("error connecting to the database %s", cfg.DBName), err)
	}

	return pool, nil
}

// DSN constructs a postgres:// connection URL from PoolConfig.
// Both pgx and golang-migrate's postgres driver accept this format.
func DSN(cfg *config.PoolConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Path:   "/" + cfg.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// WithTimeout derives the context a single store call runs under.
// A non-positive timeout leaves the parent deadline untouched.
func WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// newMigrator builds a migrate instance reading the embedded SQL files.
func newMigrator(cfg *config.PoolConfig) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, apperror.NewInternalError("failed to open embedded migrations", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, DSN(cfg))
	if err != nil {
		return nil, apperror.NewInternalError("failed to create migrator", err)
	}
	return m, nil
}

// closeMigrator releases the source and database handles held by golang-migrate.
func closeMigrator(m *migrate.Migrate) error {
	srcErr, dbErr := m.Close()
	return errors.Join(srcErr, dbErr)
}

// RunMigrations applies any pending database migrations.
// `migrate.ErrNoChange` is returned by golang-migrate when there is nothing to apply,
// which is not an actual error.
func RunMigrations(cfg *config.PoolConfig) (err error) {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeMigrator(m); closeErr != nil && err == nil {
			err = apperror.NewInternalError("failed to close migrator", closeErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewInternalError("failed to run migrations", err)
	}
	return nil
}

// RollbackMigrations reverts the given number of migration steps.
func RollbackMigrations(cfg *config.PoolConfig, steps int) (err error) {
	if steps < 1 {
		return apperror.NewBadRequestError("steps must be at least 1", nil)
	}
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeMigrator(m); closeErr != nil && err == nil {
			err = apperror.NewInternalError("failed to close migrator", closeErr)
		}
	}()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperror.NewInternalError("failed to roll back migrations", err)
	}
	return nil
}
