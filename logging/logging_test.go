package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelParsing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, zerolog.DebugLevel, New(&buf, "DEBUG", true).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(&buf, "nonsense", true).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(&buf, "", true).GetLevel())
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, "info", true)
	l.Info().Str("k", "v").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "v", line["k"])
	assert.Equal(t, "payroll-api", line["service"])
}

func TestMiddleware_LogsRequest(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, "info", true)

	handler := middleware.RequestID(Middleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/payrolls", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "request handled", line["message"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/payrolls", line["path"])
	assert.EqualValues(t, http.StatusTeapot, line["status"])
	assert.EqualValues(t, 5, line["size"])
	assert.NotEmpty(t, line["request_id"])
}
