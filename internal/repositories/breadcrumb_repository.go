// repositories/breadcrumb_repository.go
package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/worksite/onsite_backend/db"
	"github.com/worksite/onsite_backend/internal/models"
)

type BreadcrumbRepository struct {
	gw *db.Gateway
}

func NewBreadcrumbRepository(gw *db.Gateway) *BreadcrumbRepository {
	return &BreadcrumbRepository{gw: gw}
}

// Insert appends a location sample. Referential integrity against shifts is
// enforced by the store's foreign key, not checked here.
func (r *BreadcrumbRepository) Insert(ctx context.Context, bc *models.Breadcrumb) error {
	bc.ID = uuid.NewString()
	query := `
		INSERT INTO breadcrumbs (id, shift_id, at, lat, lng, accuracy_m)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.gw.ExecContext(ctx, query,
		bc.ID,
		bc.ShiftID,
		bc.At,
		bc.Lat,
		bc.Lng,
		bc.AccuracyM,
	)
	return err
}

func (r *BreadcrumbRepository) ListForShift(ctx context.Context, shiftID string) ([]models.Breadcrumb, error) {
	query := `
		SELECT id, shift_id, at, lat, lng, accuracy_m
		FROM breadcrumbs
		WHERE shift_id = $1
		ORDER BY at ASC
	`
	rows, err := r.gw.QueryContext(ctx, query, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crumbs []models.Breadcrumb
	for rows.Next() {
		var b models.Breadcrumb
		if err := rows.Scan(&b.ID, &b.ShiftID, &b.At, &b.Lat, &b.Lng, &b.AccuracyM); err != nil {
			return nil, err
		}
		crumbs = append(crumbs, b)
	}
	return crumbs, rows.Err()
}

// LastPerActiveShift returns the newest sample for every open shift of a
// site, for the supervisor map view.
func (r *BreadcrumbRepository) LastPerActiveShift(ctx context.Context, siteID string) ([]models.LastLocation, error) {
	query := `
		SELECT DISTINCT ON (b.shift_id) b.shift_id, s.worker_email, b.lat, b.lng, b.at AS ts
		FROM breadcrumbs b
		JOIN shifts s ON s.id = b.shift_id
		WHERE s.site_id = $1 AND s.ended_at IS NULL
		ORDER BY b.shift_id, b.at DESC
	`
	rows, err := r.gw.QueryContext(ctx, query, siteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.LastLocation
	for rows.Next() {
		var loc models.LastLocation
		if err := rows.Scan(&loc.ShiftID, &loc.WorkerEmail, &loc.Lat, &loc.Lng, &loc.Ts); err != nil {
			return nil, err
		}
		result = append(result, loc)
	}
	return result, rows.Err()
}
