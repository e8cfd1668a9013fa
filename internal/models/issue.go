package models

import (
	"time"

	"github.com/google/uuid"
)

// IssueStatus is the stored string form of an issue's workflow state.
type IssueStatus string

const (
	StatusOpen     IssueStatus = "open"
	StatusInReview IssueStatus = "in_review"
	StatusApproved IssueStatus = "approved"
	StatusDisputed IssueStatus = "disputed"
)

// issueStatuses is the reviewed mapping between wire/storage names and
// statuses. Keep this table in sync with the issues_status_check constraint;
// statuses are never derived from Go identifiers.
var issueStatuses = map[string]IssueStatus{
	"open":      StatusOpen,
	"in_review": StatusInReview,
	"approved":  StatusApproved,
	"disputed":  StatusDisputed,
}

// ParseIssueStatus maps a stored or client-supplied name to a status.
func ParseIssueStatus(s string) (IssueStatus, bool) {
	st, ok := issueStatuses[s]
	return st, ok
}

// Valid reports whether the status is one of the four known states.
func (s IssueStatus) Valid() bool {
	_, ok := issueStatuses[string(s)]
	return ok
}

func (s IssueStatus) String() string {
	return string(s)
}

// Issue is a bounty-carrying work item under a project. The project reference
// is not validated against the projects table at this layer, bounty_value is
// unconstrained, and any status can follow any other.
type Issue struct {
	ID          uuid.UUID   `json:"id"`
	ProjectID   uuid.UUID   `json:"project_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	BountyValue float64     `json:"bounty_value"`
	Status      IssueStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
}
