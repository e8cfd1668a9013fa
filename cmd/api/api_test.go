package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/auth"
	"github.com/openbounty/bounty-api/internal/config"
)

var userCols = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

// TestAPI_LoginThenListUsers is an integration test: it builds the full router with a
// sqlmock-backed DB, logs in to get a token, then calls GET /users with it.
func TestAPI_LoginThenListUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	id := uuid.New()

	// Login: GetByEmail
	mock.ExpectQuery(`SELECT id, username, email, password_hash`).
		WithArgs("integration@example.com").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(id, "integration", "integration@example.com", hash, time.Now(), nil))

	// GET /users
	mock.ExpectQuery(`SELECT id, username, email, password_hash`).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(id, "integration", "integration@example.com", hash, time.Now(), nil))

	cfg := config.Config{JWTSecret: "test-secret-for-integration", JWTExpireHours: 24}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	// 1) Login
	loginBody, _ := json.Marshal(map[string]string{
		"email":    "integration@example.com",
		"password": "hunter2",
	})
	loginResp, err := http.Post(srv.URL+"/auth/login", "application/json", bytes.NewReader(loginBody))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer loginResp.Body.Close()
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("login status: got %d, want 200", loginResp.StatusCode)
	}
	var loginOut struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(loginResp.Body).Decode(&loginOut); err != nil || loginOut.Token == "" {
		t.Fatalf("login response: %v", err)
	}

	// 2) GET /users with Bearer token
	req, _ := http.NewRequest("GET", srv.URL+"/users", nil)
	req.Header.Set("Authorization", "Bearer "+loginOut.Token)
	usersResp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("users request: %v", err)
	}
	defer usersResp.Body.Close()
	if usersResp.StatusCode != http.StatusOK {
		t.Fatalf("GET /users status: got %d, want 200", usersResp.StatusCode)
	}
	var users []struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(usersResp.Body).Decode(&users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 1 || users[0].Username != "integration" {
		t.Errorf("unexpected users: %+v", users)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// TestAPI_UsersRequireToken checks that the users surface rejects anonymous calls.
func TestAPI_UsersRequireToken(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cfg := config.Config{JWTSecret: "x", JWTExpireHours: 24}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/users")
	if err != nil {
		t.Fatalf("users request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("GET /users status: got %d, want 401", resp.StatusCode)
	}
}

// TestAPI_ProjectReadsArePublic checks that listing projects needs no token
// while creating one does.
func TestAPI_ProjectReadsArePublic(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, owner_id, name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "name", "description", "github_link", "tags", "created_at", "updated_at"}))

	cfg := config.Config{JWTSecret: "x", JWTExpireHours: 24}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	listResp, err := http.Get(srv.URL + "/projects")
	if err != nil {
		t.Fatalf("projects request: %v", err)
	}
	defer listResp.Body.Close()
	if listResp.StatusCode != http.StatusOK {
		t.Errorf("GET /projects status: got %d, want 200", listResp.StatusCode)
	}

	body, _ := json.Marshal(map[string]string{"name": "repo"})
	createResp, err := http.Post(srv.URL+"/projects", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	defer createResp.Body.Close()
	if createResp.StatusCode != http.StatusUnauthorized {
		t.Errorf("POST /projects status: got %d, want 401", createResp.StatusCode)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// TestAPI_Health is a quick smoke test for the health endpoint.
func TestAPI_Health(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cfg := config.Config{JWTSecret: "x", JWTExpireHours: 24}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /health status: got %d, want 200", resp.StatusCode)
	}
}

// TestAPI_Ready checks that /ready pings the DB and returns 200 when DB is reachable.
func TestAPI_Ready(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	cfg := config.Config{JWTSecret: "x", JWTExpireHours: 24}
	r := newRouter(db, cfg)
	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ready")
	if err != nil {
		t.Fatalf("ready request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /ready status: got %d, want 200", resp.StatusCode)
	}
}
