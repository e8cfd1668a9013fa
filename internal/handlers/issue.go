package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/models"
	"github.com/openbounty/bounty-api/internal/usecase"
)

// ==========================
// IssueHandler
// ==========================
type IssueHandler struct {
	Issues *usecase.IssueUsecases
}

// ==========================
// Create Issue
// ==========================
func (h *IssueHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProjectID   string  `json:"project_id" validate:"required,uuid4"`
		Title       string  `json:"title" validate:"required,max=255"`
		Description string  `json:"description" validate:"max=4000"`
		BountyValue float64 `json:"bounty_value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	// ===== Validate input =====
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	projectID, err := uuid.Parse(input.ProjectID)
	if err != nil {
		JSONError(w, "invalid project_id", http.StatusBadRequest)
		return
	}

	issue, err := h.Issues.Create(r.Context(), projectID, input.Title, input.Description, input.BountyValue)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(issue)
}

// ==========================
// List Issues
// ==========================
func (h *IssueHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	var (
		issues interface{}
		err    error
	)
	if projectStr := r.URL.Query().Get("project_id"); projectStr != "" {
		projectID, parseErr := uuid.Parse(projectStr)
		if parseErr != nil {
			JSONError(w, "invalid project_id", http.StatusBadRequest)
			return
		}
		issues, err = h.Issues.ListByProject(r.Context(), projectID)
	} else {
		issues, err = h.Issues.List(r.Context())
	}
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(issues)
}

// ==========================
// Get Issue
// ==========================
func (h *IssueHandler) GetIssue(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid issue id", http.StatusBadRequest)
		return
	}

	issue, err := h.Issues.Get(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(issue)
}

// ==========================
// Update Issue
// ==========================
func (h *IssueHandler) UpdateIssue(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid issue id", http.StatusBadRequest)
		return
	}

	var input struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		BountyValue *float64 `json:"bounty_value"`
		Status      *string  `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	update := usecase.UpdateIssueInput{
		Title:       input.Title,
		Description: input.Description,
		BountyValue: input.BountyValue,
	}
	if input.Status != nil {
		// Unknown names fall through to the status check in the usecase.
		status := models.IssueStatus(*input.Status)
		update.Status = &status
	}

	issue, err := h.Issues.Update(r.Context(), id, update)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(issue)
}

// ==========================
// Update Issue Status
// ==========================
func (h *IssueHandler) UpdateIssueStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid issue id", http.StatusBadRequest)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.Issues.UpdateStatus(r.Context(), id, models.IssueStatus(input.Status)); err != nil {
		JSONDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ==========================
// Delete Issue
// ==========================
func (h *IssueHandler) DeleteIssue(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid issue id", http.StatusBadRequest)
		return
	}

	if err := h.Issues.Delete(r.Context(), id); err != nil {
		JSONDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
