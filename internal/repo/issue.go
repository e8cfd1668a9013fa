package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/domain"
	"github.com/openbounty/bounty-api/internal/models"
)

// ==========================
// IssueRepo
// ==========================

type IssueRepo struct {
	DB *sql.DB
}

func NewIssueRepo(db *sql.DB) *IssueRepo {
	return &IssueRepo{DB: db}
}

// ==========================
// Create Issue
// ==========================

func (r *IssueRepo) Create(ctx context.Context, issue *models.Issue) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO issues (id, project_id, title, description, bounty_value, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, issue.ID, issue.ProjectID, issue.Title, issue.Description, issue.BountyValue,
		string(issue.Status), issue.CreatedAt, issue.UpdatedAt)
	if err != nil {
		return domain.Infra("creating issue", err)
	}
	return nil
}

// ==========================
// Get By ID
// ==========================

func (r *IssueRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	issue := &models.Issue{}
	var status string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, project_id, title, description, bounty_value, status, created_at, updated_at
		FROM issues
		WHERE id = $1
	`, id).Scan(&issue.ID, &issue.ProjectID, &issue.Title, &issue.Description,
		&issue.BountyValue, &status, &issue.CreatedAt, &issue.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Infra("fetching issue", err)
	}
	issue.Status = models.IssueStatus(status)
	return issue, nil
}

// ==========================
// Update Issue
// ==========================

func (r *IssueRepo) Update(ctx context.Context, issue *models.Issue) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE issues
		SET title = $1,
		    description = $2,
		    bounty_value = $3,
		    status = $4,
		    updated_at = $5
		WHERE id = $6
	`, issue.Title, issue.Description, issue.BountyValue, string(issue.Status),
		issue.UpdatedAt, issue.ID)
	if err != nil {
		return domain.Infra("updating issue", err)
	}
	return nil
}

// ==========================
// Update Status
// ==========================

// UpdateStatus writes the status column directly, without reading the row
// first. Missing ids are silently no-ops, same as Delete.
func (r *IssueRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IssueStatus) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE issues SET status = $1 WHERE id = $2
	`, string(status), id)
	if err != nil {
		return domain.Infra("updating issue status", err)
	}
	return nil
}

// ==========================
// Delete Issue
// ==========================

func (r *IssueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM issues WHERE id = $1`, id); err != nil {
		return domain.Infra("deleting issue", err)
	}
	return nil
}

// ==========================
// List Issues
// ==========================

func (r *IssueRepo) List(ctx context.Context) ([]models.Issue, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, project_id, title, description, bounty_value, status, created_at, updated_at
		FROM issues
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, domain.Infra("listing issues", err)
	}
	defer rows.Close()
	return collectIssues(rows)
}

// ==========================
// List By Project
// ==========================

func (r *IssueRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Issue, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, project_id, title, description, bounty_value, status, created_at, updated_at
		FROM issues
		WHERE project_id = $1
		ORDER BY created_at DESC
	`, projectID)
	if err != nil {
		return nil, domain.Infra("listing issues by project", err)
	}
	defer rows.Close()
	return collectIssues(rows)
}

func collectIssues(rows *sql.Rows) ([]models.Issue, error) {
	var issues []models.Issue
	for rows.Next() {
		var iss models.Issue
		var status string
		if err := rows.Scan(&iss.ID, &iss.ProjectID, &iss.Title, &iss.Description,
			&iss.BountyValue, &status, &iss.CreatedAt, &iss.UpdatedAt); err != nil {
			return nil, domain.Infra("scanning issue", err)
		}
		iss.Status = models.IssueStatus(status)
		issues = append(issues, iss)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Infra("listing issues", err)
	}
	return issues, nil
}

// ==========================
// Open Issue Stats
// ==========================

// OpenStats reports the number of open issues and the sum of their bounties,
// for the gauges the scheduler refreshes.
func (r *IssueRepo) OpenStats(ctx context.Context) (count int, bountyTotal float64, err error) {
	err = r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(bounty_value), 0)
		FROM issues
		WHERE status = 'open'
	`).Scan(&count, &bountyTotal)
	if err != nil {
		return 0, 0, domain.Infra("counting open issues", err)
	}
	return count, bountyTotal, nil
}
