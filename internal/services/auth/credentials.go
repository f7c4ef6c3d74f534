// Package auth implements the credential service: account registration,
// email/password authentication and bearer token issuance.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/worksite/onsite_backend/internal/models"
	"github.com/worksite/onsite_backend/internal/repositories"
)

var (
	// ErrEmailTaken is returned when the normalized email already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore captures the persistence operations the credential service needs.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type CredentialService struct {
	users UserStore
	jwt   *JWTService
}

func NewCredentialService(users UserStore, jwt *JWTService) *CredentialService {
	return &CredentialService{users: users, jwt: jwt}
}

// NormalizeEmail lowercases and trims an address the way every entry point
// must before it touches the store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a hashed password. Anything other than an
// explicit "admin" role becomes "worker". Duplicate detection relies on the
// store's unique constraint, so concurrent registrations cannot both win.
func (s *CredentialService) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	if role != models.RoleAdmin {
		role = models.RoleWorker
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates an email/password pair and issues a bearer token. A
// missing or inactive user burns one bcrypt hashing round anyway so the
// failure path costs the same as a wrong password.
func (s *CredentialService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			HashPassword(password)
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.IsActive {
		HashPassword(password)
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetByID backs the profile endpoint.
func (s *CredentialService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}
