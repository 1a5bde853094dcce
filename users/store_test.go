package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithMock(t *testing.T) (*Store, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewStore(mock, time.Second), mock
}

func TestStore_Create(t *testing.T) {
	store, mock := newStoreWithMock(t)
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO users \(email, password_hash\) VALUES \(\$1, \$2\) RETURNING id, created_at`).
		WithArgs("ana@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	user, err := store.Create(context.Background(), "ana@example.com", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, created, user.CreatedAt)
}

func TestStore_Create_UniqueViolation(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("ana@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := store.Create(context.Background(), "ana@example.com", "hash")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestStore_Create_DBError(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("ana@example.com", "hash").
		WillReturnError(errors.New("db down"))

	_, err := store.Create(context.Background(), "ana@example.com", "hash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailExists)
	assert.Contains(t, err.Error(), "db down")
}

func TestStore_GetByEmail(t *testing.T) {
	store, mock := newStoreWithMock(t)
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(int64(3), "ana@example.com", "hash", created))

	user, err := store.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
}

func TestStore_GetByID_NotFound(t *testing.T) {
	store, mock := newStoreWithMock(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := store.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUser_PublicHasNoHash(t *testing.T) {
	t.Parallel()

	u := &User{ID: 1, Email: "ana@example.com", PasswordHash: "secret-hash"}
	p := u.Public()
	assert.Equal(t, Profile{ID: 1, Email: "ana@example.com"}, p)
}
