package repo

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/openbounty/bounty-api/internal/models"
)

func TestProjectRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	owner := uuid.New()
	created := time.Now().UTC()
	mock.ExpectExec(`INSERT INTO projects`).
		WithArgs(id, owner, "repo", "a cli tool", "https://github.com/acme/repo",
			pq.Array([]string{"rust", "cli"}), created, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewProjectRepo(db)
	err = repo.Create(context.Background(), &models.Project{
		ID:          id,
		OwnerID:     owner,
		Name:        "repo",
		Description: "a cli tool",
		GithubLink:  "https://github.com/acme/repo",
		Tags:        []string{"rust", "cli"},
		CreatedAt:   created,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT id, owner_id, name, description, github_link, tags`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "github_link", "tags", "created_at", "updated_at"}).
			AddRow(id, uuid.New(), "repo", "", "", pq.Array([]string{"rust", "cli", "rust"}), time.Now(), nil))

	repo := NewProjectRepo(db)
	project, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if project == nil || project.Name != "repo" {
		t.Fatalf("unexpected project: %+v", project)
	}
	// Array round-trip keeps order and duplicates.
	if !reflect.DeepEqual([]string(project.Tags), []string{"rust", "cli", "rust"}) {
		t.Errorf("unexpected tags: %v", project.Tags)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_GetByID_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT id, owner_id, name, description, github_link, tags`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "github_link", "tags", "created_at", "updated_at"}))

	repo := NewProjectRepo(db)
	project, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if project != nil {
		t.Errorf("expected nil for missing row, got %+v", project)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestProjectRepo_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	owner := uuid.New()
	mock.ExpectQuery(`SELECT id, owner_id, name, description, github_link, tags`).
		WithArgs(owner).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "github_link", "tags", "created_at", "updated_at"}).
			AddRow(uuid.New(), owner, "mine", "", "", pq.Array([]string{}), time.Now(), nil))

	repo := NewProjectRepo(db)
	projects, err := repo.ListByOwner(context.Background(), owner)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(projects) != 1 || projects[0].OwnerID != owner {
		t.Errorf("unexpected projects: %+v", projects)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
