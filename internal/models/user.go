package models

import "time"

// User is an account managed by the credential service. PasswordHash is
// never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RoleWorker = "worker"
	RoleAdmin  = "admin"
)
