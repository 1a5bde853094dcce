package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/payroll-go/apperror"
)

// Handlers wraps the Service to provide HTTP handlers.
type Handlers struct {
	service *Service
	mapper  *apperror.Mapper
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *Service, mapper *apperror.Mapper) *Handlers {
	return &Handlers{service: service, mapper: mapper}
}

// RegisterRoutes mounts the auth endpoints. Only the profile route sits behind the guard.
func (h *Handlers) RegisterRoutes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.HandleRegister())
		r.Post("/login", h.HandleLogin())
		r.With(guard).Get("/profile", h.HandleProfile())
	})
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user. The response never contains the password or its hash.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.RegisterResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Missing fields or weak password"
// @Failure 409 {object} apperror.ErrorResponse "Email already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := apperror.DecodeJSON(w, r, &req); err != nil {
			h.mapper.Write(w, r, err)
			return
		}

		profile, err := h.service.Register(r.Context(), req)
		if err != nil {
			h.mapper.Write(w, r, err)
			return
		}

		apperror.WriteJSON(w, http.StatusCreated, RegisterResponse{
			Message: "user registered successfully",
			User:    *profile,
		})
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in an existing user and returns a bearer token valid for 24 hours.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.LoginResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := apperror.DecodeJSON(w, r, &req); err != nil {
			h.mapper.Write(w, r, err)
			return
		}

		result, err := h.service.Login(r.Context(), req)
		if err != nil {
			h.mapper.Write(w, r, err)
			return
		}

		apperror.WriteJSON(w, http.StatusOK, LoginResponse{
			Message: "login successful",
			Token:   result.Token,
			User:    result.User,
		})
	}
}

// HandleProfile godoc
// @Summary Current User Profile
// @Description Returns the public profile of the authenticated user.
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.ProfileResponse
// @Failure 401 {object} apperror.ErrorResponse "Missing token"
// @Failure 403 {object} apperror.ErrorResponse "Invalid or expired token"
// @Failure 404 {object} apperror.ErrorResponse "User no longer exists"
// @Router /auth/profile [get]
// @Security BearerAuth
func (h *Handlers) HandleProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			h.mapper.Write(w, r, apperror.NewMissingTokenError("a bearer token is required to access this resource"))
			return
		}

		profile, err := h.service.GetProfile(r.Context(), identity.UserID)
		if err != nil {
			h.mapper.Write(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, ProfileResponse{User: *profile})
	}
}
