package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/middleware"
	"github.com/openbounty/bounty-api/internal/usecase"
)

// ==========================
// ProjectHandler
// ==========================
type ProjectHandler struct {
	Projects *usecase.ProjectUsecases
}

// ==========================
// Create Project
// ==========================
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.Subject(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Name        string   `json:"name" validate:"required,max=255"`
		Description string   `json:"description" validate:"max=4000"`
		GithubLink  string   `json:"github_link" validate:"omitempty,url"`
		Tags        []string `json:"tags"`
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

	project, err := h.Projects.Create(r.Context(), owner, input.Name, input.Description, input.GithubLink, input.Tags)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(project)
}

// ==========================
// List Projects
// ==========================
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var (
		projects interface{}
		err      error
	)
	if ownerStr := r.URL.Query().Get("owner_id"); ownerStr != "" {
		owner, parseErr := uuid.Parse(ownerStr)
		if parseErr != nil {
			JSONError(w, "invalid owner_id", http.StatusBadRequest)
			return
		}
		projects, err = h.Projects.ListByOwner(r.Context(), owner)
	} else {
		projects, err = h.Projects.List(r.Context())
	}
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

// ==========================
// Get Project
// ==========================
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid project id", http.StatusBadRequest)
		return
	}

	project, err := h.Projects.Get(r.Context(), id)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

// ==========================
// Update Project
// ==========================
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid project id", http.StatusBadRequest)
		return
	}

	var input struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		GithubLink  *string   `json:"github_link"`
		Tags        *[]string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	project, err := h.Projects.Update(r.Context(), id, usecase.UpdateProjectInput{
		Name:        input.Name,
		Description: input.Description,
		GithubLink:  input.GithubLink,
		Tags:        input.Tags,
	})
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(project)
}

// ==========================
// Delete Project
// ==========================
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		JSONError(w, "invalid project id", http.StatusBadRequest)
		return
	}

	if err := h.Projects.Delete(r.Context(), id); err != nil {
		JSONDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
