package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_StatusAndCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    *AppError
		status int
		code   string
	}{
		{"missing fields", NewMissingFieldsError("x"), http.StatusBadRequest, "MISSING_FIELDS"},
		{"weak password", NewWeakPasswordError("x"), http.StatusBadRequest, "WEAK_PASSWORD"},
		{"email taken", NewEmailTakenError("x", nil), http.StatusConflict, "EMAIL_TAKEN"},
		{"invalid credentials", NewInvalidCredentialsError(), http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"missing token", NewMissingTokenError("x"), http.StatusUnauthorized, "MISSING_TOKEN"},
		{"invalid token", NewInvalidTokenError("x", nil), http.StatusForbidden, "INVALID_TOKEN"},
		{"expired token", NewExpiredTokenError(nil), http.StatusForbidden, "EXPIRED_TOKEN"},
		{"invalid salary", NewInvalidSalaryError("x"), http.StatusBadRequest, "INVALID_SALARY"},
		{"invalid date", NewInvalidDateFormatError("x"), http.StatusBadRequest, "INVALID_DATE_FORMAT"},
		{"not found", NewNotFoundError("x", nil), http.StatusNotFound, "NOT_FOUND"},
		{"user not found", NewUserNotFoundError("x"), http.StatusNotFound, "USER_NOT_FOUND"},
		{"duplicate", NewDuplicateResourceError(nil), http.StatusConflict, "DUPLICATE_RESOURCE"},
		{"invalid reference", NewInvalidReferenceError(nil), http.StatusBadRequest, "INVALID_REFERENCE"},
		{"bad request", NewBadRequestError("x", nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"internal", NewInternalError("x", nil), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode())
			assert.Equal(t, tt.code, tt.err.Code())
		})
	}
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewInternalError("failed", cause)

	assert.Equal(t, "failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "plain", NewMissingFieldsError("plain").Error())
}

func TestFromError_FindsWrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("context: %w", NewNotFoundError("gone", nil))

	appErr, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, NotFoundError, appErr.Type)
	assert.True(t, IsNotFound(wrapped))

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Classify(nil))

	own := NewInvalidSalaryError("bad")
	assert.Same(t, own, Classify(fmt.Errorf("wrap: %w", own)))

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.Equal(t, DuplicateResourceError, Classify(unique).Type)

	fk := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, InvalidReferenceError, Classify(fk).Type)

	tooLong := fmt.Errorf("update: %w", &pgconn.PgError{Code: "22001"})
	assert.Equal(t, BadRequestError, Classify(tooLong).Type)
	assert.Equal(t, 400, Classify(tooLong).StatusCode())

	other := &pgconn.PgError{Code: "22003"}
	assert.Equal(t, InternalError, Classify(other).Type)

	assert.Equal(t, InternalError, Classify(errors.New("timeout")).Type)
}

func TestMapper_InternalMessageDependsOnMode(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")

	status, resp := NewMapper(true).Response(cause)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", resp.Error)
	assert.Equal(t, genericInternalMessage, resp.Message)

	_, resp = NewMapper(false).Response(cause)
	assert.Equal(t, "connection refused", resp.Message)

	// Non-internal messages are never hidden.
	_, resp = NewMapper(true).Response(NewNotFoundError("payroll not found", nil))
	assert.Equal(t, "payroll not found", resp.Message)
}

func TestMapper_Write(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payrolls/1", nil)

	NewMapper(false).Write(rec, req, NewNotFoundError("payroll not found", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"NOT_FOUND","message":"payroll not found"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    string
	}{
		{"empty body", "", false, ""},
		{"single object", `{"name":"Ana"}`, false, "Ana"},
		{"trailing whitespace", "{\"name\":\"Ana\"}\n", false, "Ana"},
		{"malformed", `{"name":`, true, ""},
		{"trailing garbage", `{"name":"Ana"}garbage`, true, ""},
		{"second value", `{"name":"Ana"} {"name":"Bo"}`, true, ""},
		{"too large", `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst struct {
				Name string `json:"name"`
			}
			req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(tt.body))
			err := DecodeJSON(httptest.NewRecorder(), req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, dst.Name)
				return
			}
			require.Error(t, err)
			assert.True(t, Is(err, BadRequestError), "unexpected error: %v", err)
		})
	}
}
