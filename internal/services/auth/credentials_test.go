package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worksite/onsite_backend/internal/models"
	"github.com/worksite/onsite_backend/internal/repositories"
)

// fakeUserStore enforces email uniqueness the way the real store does, so
// conflict detection stays on the insert path.
type fakeUserStore struct {
	byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}}
}

func (f *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return repositories.ErrDuplicate
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func newTestService() (*CredentialService, *fakeUserStore) {
	store := newFakeUserStore()
	return NewCredentialService(store, NewJWTService("test-secret")), store
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	svc, store := newTestService()

	user, err := svc.Register(context.Background(), "  Worker@Example.COM ", "hunter22", "")
	require.NoError(t, err)

	assert.Equal(t, "worker@example.com", user.Email)
	assert.Equal(t, models.RoleWorker, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.True(t, CheckPasswordHash("hunter22", user.PasswordHash))

	stored, err := store.GetByEmail(context.Background(), "worker@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterUnknownRoleDowngradesToWorker(t *testing.T) {
	svc, _ := newTestService()

	for _, role := range []string{"superadmin", "ADMIN", "root", "supervisor"} {
		user, err := svc.Register(context.Background(), role+"@x.com", "pw", role)
		require.NoError(t, err)
		assert.Equal(t, models.RoleWorker, user.Role, "role %q must downgrade", role)
	}

	admin, err := svc.Register(context.Background(), "boss@x.com", "pw", "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}

func TestRegisterDuplicateEmailConflictsAcrossCase(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), "A@X.com", "pw1", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "a@x.com", "pw2", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIssuesTokenWithIdentityClaims(t *testing.T) {
	svc, _ := newTestService()

	registered, err := svc.Register(context.Background(), "w@x.com", "secretpw", "admin")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "W@X.com", "secretpw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, registered.ID, claims["user_id"])
	assert.Equal(t, "w@x.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginFailuresShareOneErrorShape(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.Register(context.Background(), "w@x.com", "rightpw", "")
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "nobody@x.com", "rightpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "w@x.com", "wrongpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	store.byEmail["w@x.com"].IsActive = false
	_, _, err = svc.Login(context.Background(), "w@x.com", "rightpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
