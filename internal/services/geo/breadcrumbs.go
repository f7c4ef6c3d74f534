// Package geo implements breadcrumb ingestion and the location read paths.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/worksite/onsite_backend/internal/models"
)

// ErrInvalidShiftID rejects identifiers that do not even parse as UUIDs,
// before any statement reaches the store.
var ErrInvalidShiftID = errors.New("shift id is not a valid identifier")

// lastLocationTTL controls how long a cached last-known position survives
// without fresh samples.
const lastLocationTTL = 5 * time.Minute

// BreadcrumbStore captures the persistence operations the recorder needs.
type BreadcrumbStore interface {
	Insert(ctx context.Context, bc *models.Breadcrumb) error
	ListForShift(ctx context.Context, shiftID string) ([]models.Breadcrumb, error)
	LastPerActiveShift(ctx context.Context, siteID string) ([]models.LastLocation, error)
}

type GeoTrackService struct {
	crumbs BreadcrumbStore
	redis  *redis.Client
}

// NewGeoTrackService builds the recorder. redisClient may be nil, in which
// case the last-location cache is skipped entirely.
func NewGeoTrackService(crumbs BreadcrumbStore, redisClient *redis.Client) *GeoTrackService {
	return &GeoTrackService{crumbs: crumbs, redis: redisClient}
}

// Record appends a sample. The shift is not checked for existence or
// activity; a dangling shift id fails only on the store's foreign key. The
// Redis update afterwards is best effort: cache loss must never fail
// ingestion.
func (s *GeoTrackService) Record(ctx context.Context, bc *models.Breadcrumb) error {
	if err := s.crumbs.Insert(ctx, bc); err != nil {
		return err
	}

	if s.redis == nil {
		return nil
	}

	key := "last:" + bc.ShiftID
	data, _ := json.Marshal(map[string]interface{}{
		"lat": bc.Lat,
		"lng": bc.Lng,
		"ts":  bc.At.Format(time.RFC3339),
	})
	if err := s.redis.Set(ctx, key, data, lastLocationTTL).Err(); err != nil {
		log.Printf("redis set warning: %v", err)
	}
	if err := s.redis.SAdd(ctx, "live_shifts", bc.ShiftID).Err(); err != nil {
		log.Printf("redis sadd warning: %v", err)
	}
	if err := s.redis.Expire(ctx, "live_shifts", lastLocationTTL).Err(); err != nil {
		log.Printf("redis expire warning: %v", err)
	}

	return nil
}

// ListForShift returns a shift's samples ordered by sample time ascending.
// The identifier is format-checked first so malformed input comes back as
// BadRequest instead of an opaque store error.
func (s *GeoTrackService) ListForShift(ctx context.Context, shiftID string) ([]models.Breadcrumb, error) {
	if _, err := uuid.Parse(shiftID); err != nil {
		return nil, ErrInvalidShiftID
	}
	return s.crumbs.ListForShift(ctx, shiftID)
}

// LastLocations returns the newest sample per open shift of a site.
func (s *GeoTrackService) LastLocations(ctx context.Context, siteID string) ([]models.LastLocation, error) {
	return s.crumbs.LastPerActiveShift(ctx, siteID)
}
