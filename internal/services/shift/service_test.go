package shift

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksite/onsite_backend/internal/models"
	"github.com/worksite/onsite_backend/internal/repositories"
)

type fakeShiftStore struct {
	shifts map[string]*models.Shift
	order  []string
	seq    int
}

func newFakeShiftStore() *fakeShiftStore {
	return &fakeShiftStore{shifts: map[string]*models.Shift{}}
}

// tick hands out strictly increasing timestamps so ordering and re-stamp
// assertions do not depend on the wall clock.
func (f *fakeShiftStore) tick() time.Time {
	t := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Minute)
	f.seq++
	return t
}

func (f *fakeShiftStore) Insert(ctx context.Context, siteID, workerEmail string) (*models.Shift, error) {
	s := &models.Shift{
		ID:          uuid.NewString(),
		SiteID:      siteID,
		WorkerEmail: workerEmail,
		StartedAt:   f.tick(),
	}
	f.shifts[s.ID] = s
	f.order = append(f.order, s.ID)
	return s, nil
}

// End re-stamps unconditionally, mirroring the real UPDATE.
func (f *fakeShiftStore) End(ctx context.Context, shiftID string) (*models.Shift, error) {
	s, ok := f.shifts[shiftID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	now := f.tick()
	s.EndedAt = &now
	copy := *s
	return &copy, nil
}

func (f *fakeShiftStore) EndAllForSite(ctx context.Context, siteID string) (int64, error) {
	var n int64
	now := f.tick()
	for _, s := range f.shifts {
		if s.SiteID == siteID && s.EndedAt == nil {
			s.EndedAt = &now
			n++
		}
	}
	return n, nil
}

func (f *fakeShiftStore) GetByID(ctx context.Context, shiftID string) (*models.Shift, error) {
	s, ok := f.shifts[shiftID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *s
	return &copy, nil
}

// ListActive walks insertion order newest first, matching the real query's
// ORDER BY started_at DESC.
func (f *fakeShiftStore) ListActive(ctx context.Context, siteID string) ([]models.Shift, error) {
	var out []models.Shift
	for i := len(f.order) - 1; i >= 0; i-- {
		s := f.shifts[f.order[i]]
		if s.SiteID == siteID && s.EndedAt == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func TestStartNormalizesWorkerEmail(t *testing.T) {
	svc := NewService(newFakeShiftStore())

	s, err := svc.Start(context.Background(), "site-1", "  W@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "w@x.com", s.WorkerEmail)
	assert.Nil(t, s.EndedAt)
}

func TestStatusMatchesAnyEmailCase(t *testing.T) {
	svc := NewService(newFakeShiftStore())

	s, err := svc.Start(context.Background(), "site-1", "w@x.com")
	require.NoError(t, err)

	got, err := svc.Status(context.Background(), s.ID, "W@X.COM")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Nil(t, got.EndedAt)
}

func TestStatusForeignEmailIsForbidden(t *testing.T) {
	svc := NewService(newFakeShiftStore())

	s, err := svc.Start(context.Background(), "site-1", "w@x.com")
	require.NoError(t, err)

	_, err = svc.Status(context.Background(), s.ID, "other@x.com")
	assert.ErrorIs(t, err, ErrNotShiftOwner)
}

func TestStatusUnknownShiftIsNotFound(t *testing.T) {
	svc := NewService(newFakeShiftStore())

	_, err := svc.Status(context.Background(), uuid.NewString(), "w@x.com")
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestEndUnknownShiftIsNotFound(t *testing.T) {
	svc := NewService(newFakeShiftStore())

	_, err := svc.End(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestEndStampsEndAfterStartAndRestampsOnRepeat(t *testing.T) {
	svc := NewService(newFakeShiftStore())

	s, err := svc.Start(context.Background(), "site-1", "w@x.com")
	require.NoError(t, err)

	first, err := svc.End(context.Background(), s.ID)
	require.NoError(t, err)
	require.NotNil(t, first.EndedAt)
	assert.False(t, first.EndedAt.Before(first.StartedAt))

	second, err := svc.End(context.Background(), s.ID)
	require.NoError(t, err)
	require.NotNil(t, second.EndedAt)
	assert.True(t, second.EndedAt.After(*first.EndedAt), "repeated end must re-stamp")
}

func TestListActiveOrdersNewestStartFirst(t *testing.T) {
	svc := NewService(newFakeShiftStore())
	ctx := context.Background()

	first, err := svc.Start(ctx, "site-1", "a@x.com")
	require.NoError(t, err)
	second, err := svc.Start(ctx, "site-1", "b@x.com")
	require.NoError(t, err)
	third, err := svc.Start(ctx, "site-1", "c@x.com")
	require.NoError(t, err)

	active, err := svc.ListActive(ctx, "site-1")
	require.NoError(t, err)
	require.Len(t, active, 3)

	assert.Equal(t, []string{third.ID, second.ID, first.ID},
		[]string{active[0].ID, active[1].ID, active[2].ID})
	for i := 1; i < len(active); i++ {
		assert.True(t, active[i].StartedAt.Before(active[i-1].StartedAt),
			"start times must descend")
	}
}

func TestEndAllActiveCountsOnlyOpenShiftsOfSite(t *testing.T) {
	store := newFakeShiftStore()
	svc := NewService(store)
	ctx := context.Background()

	a, _ := svc.Start(ctx, "site-1", "a@x.com")
	svc.Start(ctx, "site-1", "b@x.com")
	svc.Start(ctx, "site-2", "c@x.com")
	_, err := svc.End(ctx, a.ID)
	require.NoError(t, err)

	ended, err := svc.EndAllActive(ctx, "site-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ended)

	active, err := svc.ListActive(ctx, "site-1")
	require.NoError(t, err)
	assert.Empty(t, active)

	active, err = svc.ListActive(ctx, "site-2")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}
