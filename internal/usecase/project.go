package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/domain"
	"github.com/openbounty/bounty-api/internal/models"
)

// ProjectRepository is the persistence contract the project usecases run
// against. GetByID returns (nil, nil) when no row matches.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error)
}

// ==========================
// ProjectUsecases
// ==========================

type ProjectUsecases struct {
	repo ProjectRepository
}

func NewProjectUsecases(repo ProjectRepository) *ProjectUsecases {
	return &ProjectUsecases{repo: repo}
}

// Create persists a new project. The owner id is taken as given; this layer
// does not check that the user exists.
func (u *ProjectUsecases) Create(ctx context.Context, ownerID uuid.UUID, name, description, githubLink string, tags []string) (*models.Project, error) {
	if name == "" {
		return nil, domain.InvalidData("project name cannot be empty")
	}
	if tags == nil {
		tags = []string{}
	}

	project := &models.Project{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		GithubLink:  githubLink,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *ProjectUsecases) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.NotFound("project not found")
	}
	return project, nil
}

// UpdateProjectInput carries the optional fields of a project update.
// Nil means "not present". An empty name is a no-op; empty description,
// github_link or tags overwrite, since those fields are optional.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	GithubLink  *string
	Tags        *[]string
}

func (u *ProjectUsecases) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*models.Project, error) {
	project, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.GithubLink != nil {
		project.GithubLink = *input.GithubLink
	}
	if input.Tags != nil {
		project.Tags = *input.Tags
	}

	now := time.Now().UTC()
	project.UpdatedAt = &now
	if err := u.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *ProjectUsecases) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

// List returns all projects, newest first.
func (u *ProjectUsecases) List(ctx context.Context) ([]models.Project, error) {
	return u.repo.List(ctx)
}

// ListByOwner returns the owner's projects, newest first.
func (u *ProjectUsecases) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}
