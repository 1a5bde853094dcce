package payroll

import (
	"net/http"
	"strconv"

	// `chi` is used here for routing payroll-related API endpoints and reading path parameters.
	"github.com/go-chi/chi/v5"

	"github.com/user/payroll-go/apperror"
	"github.com/user/payroll-go/auth"
)

// Handler handles HTTP requests for payrolls.
// It receives HTTP requests, delegates business logic to the Service, and formulates HTTP responses.
type Handler struct {
	service Service
	mapper  *apperror.Mapper
}

// NewHandler creates a new Handler.
func NewHandler(service Service, mapper *apperror.Mapper) *Handler {
	return &Handler{service: service, mapper: mapper}
}

// RegisterRoutes mounts the payroll endpoints behind the guard.
// /stats is registered before /{id} so it is never read as an id.
func (h *Handler) RegisterRoutes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Route("/payrolls", func(r chi.Router) {
		r.Use(guard)
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/stats", h.stats)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

// identity returns the caller placed in the context by the guard.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		h.mapper.Write(w, r, apperror.NewMissingTokenError("a bearer token is required to access this resource"))
	}
	return id, ok
}

// pathID parses {id}. Anything but a positive integer cannot name a record.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		h.mapper.Write(w, r, apperror.NewNotFoundError("the payroll does not exist or you do not have access to it", nil))
		return 0, false
	}
	return id, true
}

// list godoc
// @Summary List payrolls
// @Description Returns one page of the caller's payrolls. Unknown sort fields fall back to created_at DESC.
// @Tags Payrolls
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param sortBy query string false "id, employee_name, salary, pay_date, created_at or updated_at"
// @Param order query string false "ASC or DESC"
// @Success 200 {object} payroll.ListResponse
// @Failure 401 {object} apperror.ErrorResponse "Missing token"
// @Failure 403 {object} apperror.ErrorResponse "Invalid or expired token"
// @Router /payrolls [get]
// @Security BearerAuth
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	resp, err := h.service.List(r.Context(), identity.UserID, ListQuery{
		Page:   q.Get("page"),
		Limit:  q.Get("limit"),
		SortBy: q.Get("sortBy"),
		Order:  q.Get("order"),
	})
	if err != nil {
		h.mapper.Write(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, resp)
}

// create godoc
// @Summary Create a payroll
// @Tags Payrolls
// @Accept json
// @Produce json
// @Param payrollBody body payroll.CreateRequest true "Payroll details"
// @Success 201 {object} payroll.PayrollResponse
// @Failure 400 {object} apperror.ErrorResponse "Missing fields, invalid salary or invalid date"
// @Failure 401 {object} apperror.ErrorResponse "Missing token"
// @Failure 403 {object} apperror.ErrorResponse "Invalid or expired token"
// @Router /payrolls [post]
// @Security BearerAuth
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	var req CreateRequest
	if err := apperror.DecodeJSON(w, r, &req); err != nil {
		h.mapper.Write(w, r, err)
		return
	}
	p, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		h.mapper.Write(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusCreated, PayrollResponse{Message: "payroll created successfully", Payroll: *p})
}

// stats godoc
// @Summary Payroll statistics
// @Description Overall aggregates plus totals for the 12 most recent months with records.
// @Tags Payrolls
// @Produce json
// @Success 200 {object} payroll.Stats
// @Failure 401 {object} apperror.ErrorResponse "Missing token"
// @Failure 403 {object} apperror.ErrorResponse "Invalid or expired token"
// @Router /payrolls/stats [get]
// @Security BearerAuth
func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	stats, err := h.service.Stats(r.Context(), identity.UserID)
	if err != nil {
		h.mapper.Write(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, stats)
}

// get godoc
// @Summary Get a payroll
// @Tags Payrolls
// @Produce json
// @Param id path int true "Payroll ID"
// @Success 200 {object} payroll.PayrollResponse
// @Failure 404 {object} apperror.ErrorResponse "Not found or not owned"
// @Router /payrolls/{id} [get]
// @Security BearerAuth
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.service.Get(r.Context(), identity.UserID, id)
	if err != nil {
		h.mapper.Write(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, PayrollResponse{Payroll: *p})
}

// update godoc
// @Summary Update a payroll
// @Description Only the supplied fields change; updated_at is always refreshed.
// @Tags Payrolls
// @Accept json
// @Produce json
// @Param id path int true "Payroll ID"
// @Param payrollBody body payroll.UpdateRequest true "Fields to change"
// @Success 200 {object} payroll.PayrollResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid salary or invalid date"
// @Failure 404 {object} apperror.ErrorResponse "Not found or not owned"
// @Router /payrolls/{id} [put]
// @Security BearerAuth
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req UpdateRequest
	if err := apperror.DecodeJSON(w, r, &req); err != nil {
		h.mapper.Write(w, r, err)
		return
	}
	p, err := h.service.Update(r.Context(), identity.UserID, id, req)
	if err != nil {
		h.mapper.Write(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, PayrollResponse{Message: "payroll updated successfully", Payroll: *p})
}

// delete godoc
// @Summary Delete a payroll
// @Tags Payrolls
// @Produce json
// @Param id path int true "Payroll ID"
// @Success 200 {object} payroll.PayrollResponse "The deleted payroll"
// @Failure 404 {object} apperror.ErrorResponse "Not found or not owned"
// @Router /payrolls/{id} [delete]
// @Security BearerAuth
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.service.Delete(r.Context(), identity.UserID, id)
	if err != nil {
		h.mapper.Write(w, r, err)
		return
	}
	apperror.WriteJSON(w, http.StatusOK, PayrollResponse{Message: "payroll deleted successfully", Payroll: *p})
}
