// Package server assembles the HTTP router (global middleware, API routes, docs and
// the embedded frontend) and runs the http.Server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	// `chi` is a lightweight, idiomatic and composable router for building HTTP services in Go.
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	// `chi/cors` provides CORS (Cross-Origin Resource Sharing) middleware.
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/unrolled/secure"

	"github.com/user/payroll-go/apperror"
	"github.com/user/payroll-go/auth"
	"github.com/user/payroll-go/config"
	"github.com/user/payroll-go/db"
	// Imported for its side effect: registering the OpenAPI document served under /swagger.
	_ "github.com/user/payroll-go/docs"
	"github.com/user/payroll-go/logging"
	"github.com/user/payroll-go/payroll"
	"github.com/user/payroll-go/web"
)

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 30 * time.Second
	healthTimeout   = 2 * time.Second
)

// Options carries everything the router needs. Nil handlers leave their routes unmounted.
type Options struct {
	Config  *config.ServerConfig
	Logger  zerolog.Logger
	DB      db.Pinger
	Guard   func(http.Handler) http.Handler
	Auth    *auth.Handlers
	Payroll *payroll.Handler
}

// NewRouter builds the chi router with the global middleware chain and every route.
// IMPORTANT: Chi requires all middleware to be registered before any routes.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.Config.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Use(secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
		STSSeconds:         31536000,
		// HSTS is only sent over TLS; development keeps the relaxed host checks.
		IsDevelopment: !opts.Config.IsProduction(),
	}).Handler)

	r.Use(httprate.Limit(
		opts.Config.RateLimitRequests,
		opts.Config.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(tooManyRequests),
	))

	r.Get("/health", HandleHealth(opts.DB))

	// `/swagger/doc.json` is the conventional path for the OpenAPI spec JSON file.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if opts.Auth != nil {
		opts.Auth.RegisterRoutes(r, opts.Guard)
	}
	if opts.Payroll != nil {
		opts.Payroll.RegisterRoutes(r, opts.Guard)
	}

	r.Handle("/*", web.Handler())
	return r
}

func tooManyRequests(w http.ResponseWriter, _ *http.Request) {
	apperror.WriteJSON(w, http.StatusTooManyRequests, apperror.ErrorResponse{
		Error:   "TOO_MANY_REQUESTS",
		Message: "too many requests, please try again later",
	})
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// HandleHealth godoc
// @Summary Health check
// @Description Reports whether the service can reach its database.
// @Tags Health
// @Produce json
// @Success 200 {object} server.HealthResponse
// @Failure 503 {object} server.HealthResponse
// @Router /health [get]
func HandleHealth(pinger db.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger == nil {
			apperror.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := pinger.Ping(ctx); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health check: database unreachable")
			apperror.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
			return
		}
		apperror.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// New creates the http.Server for the router.
func New(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully,
// giving in-flight requests up to 30 seconds to finish.
func Run(ctx context.Context, srv *http.Server, logger zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info().Msg("server stopped gracefully")
	return nil
}
