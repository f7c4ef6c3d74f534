// repositories/shift_repository.go
package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/worksite/onsite_backend/db"
	"github.com/worksite/onsite_backend/internal/models"
)

type ShiftRepository struct {
	gw *db.Gateway
}

func NewShiftRepository(gw *db.Gateway) *ShiftRepository {
	return &ShiftRepository{gw: gw}
}

// Insert creates an open shift. started_at comes from the database clock.
func (r *ShiftRepository) Insert(ctx context.Context, siteID, workerEmail string) (*models.Shift, error) {
	shift := &models.Shift{
		ID:          uuid.NewString(),
		SiteID:      siteID,
		WorkerEmail: workerEmail,
	}
	query := `
		INSERT INTO shifts (id, site_id, worker_email)
		VALUES ($1, $2, $3)
		RETURNING started_at
	`
	err := r.gw.QueryRowContext(ctx, query, shift.ID, shift.SiteID, shift.WorkerEmail).
		Scan(&shift.StartedAt)
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// End stamps ended_at unconditionally, so re-ending an already ended shift
// overwrites the previous end time. Kept as-is for contract compatibility.
func (r *ShiftRepository) End(ctx context.Context, shiftID string) (*models.Shift, error) {
	query := `
		UPDATE shifts
		SET ended_at = now()
		WHERE id = $1
		RETURNING id, site_id, worker_email, started_at, ended_at
	`
	shift, err := scanShift(r.gw.QueryRowContext(ctx, query, shiftID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return shift, err
}

// EndAllForSite closes every open shift for the site in one statement and
// returns how many were closed.
func (r *ShiftRepository) EndAllForSite(ctx context.Context, siteID string) (int64, error) {
	query := `
		UPDATE shifts
		SET ended_at = now()
		WHERE site_id = $1 AND ended_at IS NULL
	`
	res, err := r.gw.ExecContext(ctx, query, siteID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ShiftRepository) GetByID(ctx context.Context, shiftID string) (*models.Shift, error) {
	query := `
		SELECT id, site_id, worker_email, started_at, ended_at
		FROM shifts
		WHERE id = $1
	`
	shift, err := scanShift(r.gw.QueryRowContext(ctx, query, shiftID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return shift, err
}

func (r *ShiftRepository) ListActive(ctx context.Context, siteID string) ([]models.Shift, error) {
	query := `
		SELECT id, site_id, worker_email, started_at, ended_at
		FROM shifts
		WHERE site_id = $1 AND ended_at IS NULL
		ORDER BY started_at DESC
	`
	rows, err := r.gw.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		var s models.Shift
		if err := rows.Scan(&s.ID, &s.SiteID, &s.WorkerEmail, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func scanShift(row *sql.Row) (*models.Shift, error) {
	var s models.Shift
	err := row.Scan(&s.ID, &s.SiteID, &s.WorkerEmail, &s.StartedAt, &s.EndedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
