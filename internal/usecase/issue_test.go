package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/domain"
	"github.com/openbounty/bounty-api/internal/models"
)

func TestIssueUsecases_CreateUnderProject(t *testing.T) {
	projects := NewProjectUsecases(&fakeProjectRepo{})
	issues := NewIssueUsecases(&fakeIssueRepo{})

	project, err := projects.Create(context.Background(), uuid.New(), "repo", "", "", []string{"rust", "cli"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	issue, err := issues.Create(context.Background(), project.ID, "bug", "", 50.0)
	if err != nil {
		t.Fatalf("create issue: %v", err)
	}
	if issue.Status != models.StatusOpen {
		t.Errorf("status: got %s, want %s", issue.Status, models.StatusOpen)
	}
	if issue.ProjectID != project.ID {
		t.Errorf("project_id: got %s, want %s", issue.ProjectID, project.ID)
	}
	if issue.BountyValue != 50.0 {
		t.Errorf("bounty: got %v, want 50", issue.BountyValue)
	}
}

func TestIssueUsecases_Create_EmptyTitle(t *testing.T) {
	repo := &fakeIssueRepo{}
	uc := NewIssueUsecases(repo)

	_, err := uc.Create(context.Background(), uuid.New(), "", "", 0)
	if !domain.IsKind(err, domain.KindInvalidData) {
		t.Errorf("expected InvalidData, got %v", err)
	}
	if len(repo.issues) != 0 {
		t.Error("no persistence write expected on invalid input")
	}
}

func TestIssueUsecases_Create_NegativeBountyAllowed(t *testing.T) {
	uc := NewIssueUsecases(&fakeIssueRepo{})
	issue, err := uc.Create(context.Background(), uuid.New(), "weird", "", -10.5)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if issue.BountyValue != -10.5 {
		t.Errorf("bounty: got %v, want -10.5", issue.BountyValue)
	}
}

func TestIssueUsecases_Update_Merge(t *testing.T) {
	uc := NewIssueUsecases(&fakeIssueRepo{})
	created, err := uc.Create(context.Background(), uuid.New(), "bug", "old", 50)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	emptyTitle := ""
	bounty := 75.0
	status := models.StatusInReview
	updated, err := uc.Update(context.Background(), created.ID, UpdateIssueInput{
		Title:       &emptyTitle,
		BountyValue: &bounty,
		Status:      &status,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "bug" {
		t.Errorf("empty title should be a no-op, got %q", updated.Title)
	}
	if updated.BountyValue != 75.0 {
		t.Errorf("bounty not merged: %v", updated.BountyValue)
	}
	if updated.Status != models.StatusInReview {
		t.Errorf("status not merged: %s", updated.Status)
	}
	if updated.UpdatedAt == nil {
		t.Error("updated_at must be set")
	}
}

func TestIssueUsecases_UpdateStatus_AnyTransition(t *testing.T) {
	repo := &fakeIssueRepo{}
	uc := NewIssueUsecases(repo)
	created, err := uc.Create(context.Background(), uuid.New(), "bug", "", 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// No transition table: approved can go straight back to open.
	for _, status := range []models.IssueStatus{models.StatusApproved, models.StatusOpen, models.StatusDisputed} {
		if err := uc.UpdateStatus(context.Background(), created.ID, status); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		got, err := uc.Get(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Status != status {
			t.Errorf("status: got %s, want %s", got.Status, status)
		}
	}
}

func TestIssueUsecases_UpdateStatus_UnknownName(t *testing.T) {
	uc := NewIssueUsecases(&fakeIssueRepo{})
	err := uc.UpdateStatus(context.Background(), uuid.New(), models.IssueStatus("wontfix"))
	if !domain.IsKind(err, domain.KindInvalidData) {
		t.Errorf("expected InvalidData, got %v", err)
	}
}

func TestIssueUsecases_Delete_MissingIDIsIdempotent(t *testing.T) {
	uc := NewIssueUsecases(&fakeIssueRepo{})
	if err := uc.Delete(context.Background(), uuid.New()); err != nil {
		t.Errorf("delete of missing id should not fail: %v", err)
	}
}

func TestIssueUsecases_List_NewestFirst(t *testing.T) {
	repo := &fakeIssueRepo{}
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		repo.issues = append(repo.issues, models.Issue{
			ID:        uuid.New(),
			ProjectID: uuid.New(),
			Title:     title,
			Status:    models.StatusOpen,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	uc := NewIssueUsecases(repo)
	list, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 || list[0].Title != "third" || list[2].Title != "first" {
		t.Errorf("unexpected order: %+v", list)
	}
}

func TestIssueUsecases_ListByProject(t *testing.T) {
	uc := NewIssueUsecases(&fakeIssueRepo{})
	projectID := uuid.New()

	if _, err := uc.Create(context.Background(), projectID, "mine", "", 0); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := uc.Create(context.Background(), uuid.New(), "other", "", 0); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := uc.ListByProject(context.Background(), projectID)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(list) != 1 || list[0].Title != "mine" {
		t.Errorf("unexpected list: %+v", list)
	}
}
