package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/domain"
	"github.com/openbounty/bounty-api/internal/models"
)

// IssueRepository is the persistence contract the issue usecases run against.
// GetByID returns (nil, nil) when no row matches.
type IssueRepository interface {
	Create(ctx context.Context, issue *models.Issue) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Issue, error)
	Update(ctx context.Context, issue *models.Issue) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.IssueStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Issue, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Issue, error)
}

// ==========================
// IssueUsecases
// ==========================

type IssueUsecases struct {
	repo IssueRepository
}

func NewIssueUsecases(repo IssueRepository) *IssueUsecases {
	return &IssueUsecases{repo: repo}
}

// Create persists a new issue. Status is always Open at creation regardless
// of caller input, and bounty_value carries no sign or range constraint.
func (u *IssueUsecases) Create(ctx context.Context, projectID uuid.UUID, title, description string, bountyValue float64) (*models.Issue, error) {
	if title == "" {
		return nil, domain.InvalidData("issue title cannot be empty")
	}

	issue := &models.Issue{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		BountyValue: bountyValue,
		Status:      models.StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

func (u *IssueUsecases) Get(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	issue, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, domain.NotFound("issue not found")
	}
	return issue, nil
}

// UpdateIssueInput carries the optional fields of an issue update. Nil means
// "not present"; an empty title is a no-op.
type UpdateIssueInput struct {
	Title       *string
	Description *string
	BountyValue *float64
	Status      *models.IssueStatus
}

func (u *IssueUsecases) Update(ctx context.Context, id uuid.UUID, input UpdateIssueInput) (*models.Issue, error) {
	issue, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title != "" {
		issue.Title = *input.Title
	}
	if input.Description != nil {
		issue.Description = *input.Description
	}
	if input.BountyValue != nil {
		issue.BountyValue = *input.BountyValue
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.InvalidData("unknown issue status")
		}
		issue.Status = *input.Status
	}

	now := time.Now().UTC()
	issue.UpdatedAt = &now
	if err := u.repo.Update(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// UpdateStatus writes the status directly, bypassing the merge path. The
// status name must be known, but any transition between known states is
// permitted, including backwards ones.
func (u *IssueUsecases) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IssueStatus) error {
	if !status.Valid() {
		return domain.InvalidData("unknown issue status")
	}
	return u.repo.UpdateStatus(ctx, id, status)
}

func (u *IssueUsecases) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

// List returns all issues, newest first.
func (u *IssueUsecases) List(ctx context.Context) ([]models.Issue, error) {
	return u.repo.List(ctx)
}

// ListByProject returns the project's issues, newest first.
func (u *IssueUsecases) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Issue, error) {
	return u.repo.ListByProject(ctx, projectID)
}
