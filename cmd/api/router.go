package main

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openbounty/bounty-api/internal/auth"
	"github.com/openbounty/bounty-api/internal/config"
	"github.com/openbounty/bounty-api/internal/handlers"
	"github.com/openbounty/bounty-api/internal/middleware"
	"github.com/openbounty/bounty-api/internal/repo"
	"github.com/openbounty/bounty-api/internal/usecase"
)

// newRouter wires repositories, usecases, and handlers onto the chi router.
// Reads on projects and issues are public; everything that writes, and the
// whole /users surface, sits behind the bearer-token middleware.
func newRouter(database *sql.DB, cfg config.Config) chi.Router {
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpireHours)

	users := usecase.NewUserUsecases(repo.NewUserRepo(database))
	projects := usecase.NewProjectUsecases(repo.NewProjectRepo(database))
	issues := usecase.NewIssueUsecases(repo.NewIssueRepo(database))

	authHandler := &handlers.AuthHandler{Users: users, Tokens: tokens}
	userHandler := &handlers.UserHandler{Users: users}
	projectHandler := &handlers.ProjectHandler{Projects: projects}
	issueHandler := &handlers.IssueHandler{Issues: issues}

	requireAuth := middleware.Auth(tokens)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSCertFile != "" && cfg.TLSKeyFile != ""))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.MaxBytes(0))

	// ===== Ops endpoints =====
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := database.PingContext(r.Context()); err != nil {
			handlers.JSONError(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintln(w, "ready")
	})
	r.Handle("/metrics", promhttp.Handler())

	// ===== Auth =====
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// ===== Users =====
	r.Route("/users", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
	})

	// ===== Projects =====
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", projectHandler.ListProjects)
		r.Get("/{id}", projectHandler.GetProject)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", projectHandler.CreateProject)
			r.Put("/{id}", projectHandler.UpdateProject)
			r.Delete("/{id}", projectHandler.DeleteProject)
		})
	})

	// ===== Issues =====
	r.Route("/issues", func(r chi.Router) {
		r.Get("/", issueHandler.ListIssues)
		r.Get("/{id}", issueHandler.GetIssue)
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", issueHandler.CreateIssue)
			r.Put("/{id}", issueHandler.UpdateIssue)
			r.Patch("/{id}/status", issueHandler.UpdateIssueStatus)
			r.Delete("/{id}", issueHandler.DeleteIssue)
		})
	})

	return r
}
