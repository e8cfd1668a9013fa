package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can authenticate and own projects.
// PasswordHash is never serialized.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
