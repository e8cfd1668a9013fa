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

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// ==========================
// UserRepo
// ==========================

type UserRepo struct {
	DB *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db}
}

// ==========================
// Create User
// ==========================

// Create inserts the user. The unique index on email is the last line of
// defense against concurrent registrations; a violation maps to Conflict.
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.Conflict("email already in use")
		}
		return domain.Infra("creating user", err)
	}
	return nil
}

// ==========================
// Get By ID
// ==========================

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Infra("fetching user", err)
	}
	return user, nil
}

// ==========================
// Get By Email
// ==========================

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Infra("fetching user by email", err)
	}
	return user, nil
}

// ==========================
// Update User
// ==========================

func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET username = $1,
		    email = $2,
		    password_hash = $3,
		    updated_at = $4
		WHERE id = $5
	`, user.Username, user.Email, user.PasswordHash, user.UpdatedAt, user.ID)
	if err != nil {
		return domain.Infra("updating user", err)
	}
	return nil
}

// ==========================
// Delete User
// ==========================

// Delete does not report a missing row; deleting twice is fine.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return domain.Infra("deleting user", err)
	}
	return nil
}

// ==========================
// List Users
// ==========================

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, domain.Infra("listing users", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, domain.Infra("scanning user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Infra("listing users", err)
	}
	return users, nil
}
