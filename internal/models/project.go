package models

import (
	"time"

	"github.com/google/uuid"
)

// Project groups issues under an owning user. The owner reference is not
// validated against the users table at this layer.
type Project struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	GithubLink  string     `json:"github_link,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
