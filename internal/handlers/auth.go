package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/openbounty/bounty-api/internal/auth"
	"github.com/openbounty/bounty-api/internal/usecase"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Users  *usecase.UserUsecases
	Tokens *auth.TokenService
}

// ==========================
// Register
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username" validate:"required,max=255"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
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

	user, err := h.Users.Register(r.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// ==========================
// Login
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Unknown email and wrong password come back as different kinds; the
	// mapping keeps that distinction (404 vs 401).
	user, err := h.Users.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		JSONDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
