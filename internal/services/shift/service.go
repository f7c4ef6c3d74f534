// Package shift implements the shift lifecycle: start, end, bulk close and
// the supervisor/worker read paths.
package shift

import (
	"context"
	"errors"

	"github.com/worksite/onsite_backend/internal/models"
	"github.com/worksite/onsite_backend/internal/repositories"
	"github.com/worksite/onsite_backend/internal/services/auth"
)

var (
	// ErrShiftNotFound is returned when a shift identifier resolves to nothing.
	ErrShiftNotFound = errors.New("shift not found")
	// ErrNotShiftOwner is returned when the caller-supplied worker email does
	// not match the one recorded on the shift.
	ErrNotShiftOwner = errors.New("worker email does not match shift")
)

// ShiftStore captures the persistence operations the lifecycle manager needs.
type ShiftStore interface {
	Insert(ctx context.Context, siteID, workerEmail string) (*models.Shift, error)
	End(ctx context.Context, shiftID string) (*models.Shift, error)
	EndAllForSite(ctx context.Context, siteID string) (int64, error)
	GetByID(ctx context.Context, shiftID string) (*models.Shift, error)
	ListActive(ctx context.Context, siteID string) ([]models.Shift, error)
}

type Service struct {
	shifts ShiftStore
}

func NewService(shifts ShiftStore) *Service {
	return &Service{shifts: shifts}
}

// Start opens a shift with the store clock as start time. Nothing prevents a
// worker from holding several open shifts at once; concurrent starts are
// allowed to interleave.
func (s *Service) Start(ctx context.Context, siteID, workerEmail string) (*models.Shift, error) {
	return s.shifts.Insert(ctx, siteID, auth.NormalizeEmail(workerEmail))
}

// End stamps the end time. Repeated calls re-stamp it; see the repository.
func (s *Service) End(ctx context.Context, shiftID string) (*models.Shift, error) {
	shift, err := s.shifts.End(ctx, shiftID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrShiftNotFound
	}
	return shift, err
}

// EndAllActive closes every open shift for a site in a single statement and
// reports how many were closed.
func (s *Service) EndAllActive(ctx context.Context, siteID string) (int64, error) {
	return s.shifts.EndAllForSite(ctx, siteID)
}

// Status fetches a shift on behalf of a worker. The supplied email acts as
// the capability: a mismatch against the stored one is Forbidden. There is
// no session binding here.
func (s *Service) Status(ctx context.Context, shiftID, workerEmail string) (*models.Shift, error) {
	shift, err := s.Get(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if auth.NormalizeEmail(shift.WorkerEmail) != auth.NormalizeEmail(workerEmail) {
		return nil, ErrNotShiftOwner
	}
	return shift, nil
}

// Get fetches a shift without any ownership check. Supervisor paths only.
func (s *Service) Get(ctx context.Context, shiftID string) (*models.Shift, error) {
	shift, err := s.shifts.GetByID(ctx, shiftID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrShiftNotFound
	}
	return shift, err
}

// ListActive returns the open shifts for a site, newest start first.
func (s *Service) ListActive(ctx context.Context, siteID string) ([]models.Shift, error) {
	return s.shifts.ListActive(ctx, siteID)
}
