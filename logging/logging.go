// Package logging builds the application's zerolog logger and the HTTP access-log middleware.
package logging

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// New returns a logger writing JSON lines in production and a human friendly
// console format otherwise. Unknown levels fall back to info.
func New(out io.Writer, level string, production bool) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if !production {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "payroll-api").Logger()
}

// Middleware returns the request logging chain: it stores the logger in the
// request context (for hlog.FromRequest) and emits one access line per request.
// It expects chi's RequestID middleware to run earlier in the chain.
func Middleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	withLogger := hlog.NewHandler(logger)
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		event := hlog.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			event = hlog.FromRequest(r).Warn()
		}
		event.
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	})

	return func(next http.Handler) http.Handler {
		return withLogger(access(next))
	}
}
