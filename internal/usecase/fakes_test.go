package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/models"
)

// In-memory repositories honoring the persistence contract: lookups return
// (nil, nil) when absent, listings come back newest first, and delete/update
// do not report whether the row existed.

// ==========================
// fakeUserRepo
// ==========================

type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
		}
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	out := r.users[:0]
	for _, u := range r.users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	r.users = out
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]models.User, error) {
	out := append([]models.User(nil), r.users...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ==========================
// fakeProjectRepo
// ==========================

type fakeProjectRepo struct {
	projects []models.Project
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	r.projects = append(r.projects, *project)
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *models.Project) error {
	for i := range r.projects {
		if r.projects[i].ID == project.ID {
			r.projects[i] = *project
		}
	}
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	out := r.projects[:0]
	for _, p := range r.projects {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.projects = out
	return nil
}

func (r *fakeProjectRepo) List(_ context.Context) ([]models.Project, error) {
	out := append([]models.Project(nil), r.projects...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeProjectRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	var out []models.Project
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ==========================
// fakeIssueRepo
// ==========================

type fakeIssueRepo struct {
	issues []models.Issue
}

func (r *fakeIssueRepo) Create(_ context.Context, issue *models.Issue) error {
	r.issues = append(r.issues, *issue)
	return nil
}

func (r *fakeIssueRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Issue, error) {
	for i := range r.issues {
		if r.issues[i].ID == id {
			iss := r.issues[i]
			return &iss, nil
		}
	}
	return nil, nil
}

func (r *fakeIssueRepo) Update(_ context.Context, issue *models.Issue) error {
	for i := range r.issues {
		if r.issues[i].ID == issue.ID {
			r.issues[i] = *issue
		}
	}
	return nil
}

func (r *fakeIssueRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.IssueStatus) error {
	for i := range r.issues {
		if r.issues[i].ID == id {
			r.issues[i].Status = status
		}
	}
	return nil
}

func (r *fakeIssueRepo) Delete(_ context.Context, id uuid.UUID) error {
	out := r.issues[:0]
	for _, iss := range r.issues {
		if iss.ID != id {
			out = append(out, iss)
		}
	}
	r.issues = out
	return nil
}

func (r *fakeIssueRepo) List(_ context.Context) ([]models.Issue, error) {
	out := append([]models.Issue(nil), r.issues...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeIssueRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]models.Issue, error) {
	var out []models.Issue
	for _, iss := range r.issues {
		if iss.ProjectID == projectID {
			out = append(out, iss)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
