package payroll

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/user/payroll-go/apperror"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	// maxPage keeps (page-1)*limit inside a 32-bit int.
	maxPage = math.MaxInt32 / maxLimit
)

// Repository is the record store as seen by the pipeline.
// *Store satisfies it; tests use an in-memory fake.
type Repository interface {
	List(ctx context.Context, userID int64, params ListParams) ([]Payroll, error)
	Count(ctx context.Context, userID int64) (int64, error)
	Get(ctx context.Context, userID, id int64) (*Payroll, error)
	Create(ctx context.Context, userID int64, f Fields) (*Payroll, error)
	Update(ctx context.Context, userID, id int64, c Changes) (*Payroll, error)
	Delete(ctx context.Context, userID, id int64) (*Payroll, error)
	Stats(ctx context.Context, userID int64) (*Stats, error)
}

// Service defines the payroll operations available to an authenticated user.
// Handlers depend on this interface rather than the concrete implementation.
type Service interface {
	List(ctx context.Context, userID int64, q ListQuery) (*ListResponse, error)
	Get(ctx context.Context, userID, id int64) (*Payroll, error)
	Create(ctx context.Context, userID int64, req CreateRequest) (*Payroll, error)
	Update(ctx context.Context, userID, id int64, req UpdateRequest) (*Payroll, error)
	Delete(ctx context.Context, userID, id int64) (*Payroll, error)
	Stats(ctx context.Context, userID int64) (*Stats, error)
}

// serviceImpl is an implementation of Service.
type serviceImpl struct {
	repo      Repository
	validator *Validator
}

// NewService creates a new Service.
func NewService(repo Repository, validator *Validator) Service {
	return &serviceImpl{repo: repo, validator: validator}
}

// notFound converts the store sentinel into the taxonomy; other errors pass through.
func notFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperror.NewNotFoundError("the payroll does not exist or you do not have access to it", err)
	}
	return err
}

// NormalizeListQuery turns raw query parameters into integers in range.
// Non-numeric or values below 1 fall back to the defaults; page and limit are capped.
func NormalizeListQuery(q ListQuery) ListParams {
	page := min(positiveOr(q.Page, defaultPage), maxPage)
	limit := min(positiveOr(q.Limit, defaultLimit), maxLimit)
	column, order := orderBy(q.SortBy, q.Order)
	return ListParams{Page: page, Limit: limit, SortBy: column, Order: order}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// List returns one page of the user's records with pagination metadata.
func (s *serviceImpl) List(ctx context.Context, userID int64, q ListQuery) (*ListResponse, error) {
	params := NormalizeListQuery(q)

	payrolls, err := s.repo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return &ListResponse{
		Payrolls: payrolls,
		Pagination: Pagination{
			CurrentPage:  params.Page,
			TotalPages:   totalPages,
			TotalRecords: total,
			Limit:        params.Limit,
			HasNext:      params.Page < totalPages,
			HasPrev:      params.Page > 1,
		},
	}, nil
}

// Get returns one owned record.
func (s *serviceImpl) Get(ctx context.Context, userID, id int64) (*Payroll, error) {
	p, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Create validates in required mode and stores a new record.
func (s *serviceImpl) Create(ctx context.Context, userID int64, req CreateRequest) (*Payroll, error) {
	fields, err := s.validator.Create(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, *fields)
}

// Update checks ownership first, then validates the supplied fields and applies them.
// Concurrent updates of the same record are last-write-wins.
func (s *serviceImpl) Update(ctx context.Context, userID, id int64, req UpdateRequest) (*Payroll, error) {
	if _, err := s.repo.Get(ctx, userID, id); err != nil {
		return nil, notFound(err)
	}
	changes, err := s.validator.Update(req)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.Update(ctx, userID, id, *changes)
	if err != nil {
		// The record may have been deleted between the check and the update.
		return nil, notFound(err)
	}
	return p, nil
}

// Delete removes an owned record and returns its last state.
func (s *serviceImpl) Delete(ctx context.Context, userID, id int64) (*Payroll, error) {
	p, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Stats returns the user's aggregates.
func (s *serviceImpl) Stats(ctx context.Context, userID int64) (*Stats, error) {
	return s.repo.Stats(ctx, userID)
}
