package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/hlog"
)

// PostgreSQL SQLSTATE codes the mapper knows how to classify.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"
)

const genericInternalMessage = "an internal error has occurred"

// Classify turns any error into an *AppError.
// AppErrors anywhere in the chain pass through unchanged; PostgreSQL constraint
// violations become DuplicateResource / InvalidReference, overlong strings become
// BadRequest; everything else is Internal.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := FromError(err); ok {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return NewDuplicateResourceError(err)
		case pgForeignKeyViolation:
			return NewInvalidReferenceError(err)
		case pgStringTooLong:
			return NewBadRequestError("a value is longer than its column allows", err)
		}
	}

	return NewInternalError(err.Error(), err)
}

// Mapper writes classified errors as JSON responses.
// Production mode hides the details of internal errors from clients.
type Mapper struct {
	production bool
}

// NewMapper creates a Mapper. `production` is the deployment-mode switch.
func NewMapper(production bool) *Mapper {
	return &Mapper{production: production}
}

// Response returns the status code and payload the client will see for err.
func (m *Mapper) Response(err error) (int, ErrorResponse) {
	appErr := Classify(err)
	resp := appErr.ToResponse()
	if appErr.Type == InternalError && m.production {
		resp.Message = genericInternalMessage
	}
	return appErr.StatusCode(), resp
}

// Write classifies err, logs server-side failures with the request logger and
// writes the standardized error response.
func (m *Mapper) Write(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := m.Response(err)
	if status >= http.StatusInternalServerError {
		hlog.FromRequest(r).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}
	WriteJSON(w, status, resp)
}

// WriteJSON serializes `data` to JSON and writes it with the given `status`.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Avoid writing nil, which would result in a "null" response body
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; nothing more can be reported to the client.
			return
		}
	}
}

// MaxBodyBytes caps the size of a JSON request body.
const MaxBodyBytes = 100 << 10

// DecodeJSON decodes a single JSON value from the request body into dst.
// An empty body leaves dst untouched so the field rules can report what is missing.
// Bodies over MaxBodyBytes and data after the first value are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return decodeError(err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after the JSON value")
		}
		return decodeError(err)
	}
	return nil
}

func decodeError(err error) *AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return NewBadRequestError(fmt.Sprintf("request body must not exceed %d bytes", tooLarge.Limit), err)
	}
	return NewBadRequestError("invalid request body: "+err.Error(), err)
}
