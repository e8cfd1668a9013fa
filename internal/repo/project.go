package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/openbounty/bounty-api/internal/domain"
	"github.com/openbounty/bounty-api/internal/models"
)

// ==========================
// ProjectRepo
// ==========================

type ProjectRepo struct {
	DB *sql.DB
}

func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{DB: db}
}

// ==========================
// Create Project
// ==========================

func (r *ProjectRepo) Create(ctx context.Context, project *models.Project) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO projects (id, owner_id, name, description, github_link, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, project.ID, project.OwnerID, project.Name, project.Description, project.GithubLink,
		pq.Array(project.Tags), project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return domain.Infra("creating project", err)
	}
	return nil
}

// ==========================
// Get By ID
// ==========================

func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project := &models.Project{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, owner_id, name, description, github_link, tags, created_at, updated_at
		FROM projects
		WHERE id = $1
	`, id).Scan(&project.ID, &project.OwnerID, &project.Name, &project.Description,
		&project.GithubLink, pq.Array(&project.Tags), &project.CreatedAt, &project.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Infra("fetching project", err)
	}
	return project, nil
}

// ==========================
// Update Project
// ==========================

func (r *ProjectRepo) Update(ctx context.Context, project *models.Project) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE projects
		SET name = $1,
		    description = $2,
		    github_link = $3,
		    tags = $4,
		    updated_at = $5
		WHERE id = $6
	`, project.Name, project.Description, project.GithubLink, pq.Array(project.Tags),
		project.UpdatedAt, project.ID)
	if err != nil {
		return domain.Infra("updating project", err)
	}
	return nil
}

// ==========================
// Delete Project
// ==========================

// Delete cascades to the project's issues via the schema.
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
		return domain.Infra("deleting project", err)
	}
	return nil
}

// ==========================
// List Projects
// ==========================

func (r *ProjectRepo) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, name, description, github_link, tags, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, domain.Infra("listing projects", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

// ==========================
// List By Owner
// ==========================

func (r *ProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, owner_id, name, description, github_link, tags, created_at, updated_at
		FROM projects
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, domain.Infra("listing projects by owner", err)
	}
	defer rows.Close()
	return collectProjects(rows)
}

func collectProjects(rows *sql.Rows) ([]models.Project, error) {
	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.GithubLink,
			pq.Array(&p.Tags), &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, domain.Infra("scanning project", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Infra("listing projects", err)
	}
	return projects, nil
}
