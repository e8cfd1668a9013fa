package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/auth"
	"github.com/openbounty/bounty-api/internal/domain"
	"github.com/openbounty/bounty-api/internal/models"
)

// UserRepository is the persistence contract the user usecases run against.
// Lookups return (nil, nil) when no row matches; the usecase turns that into
// NotFound. Implementations wrap driver failures as domain Infra errors.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.User, error)
}

// ==========================
// UserUsecases
// ==========================

type UserUsecases struct {
	repo UserRepository
}

func NewUserUsecases(repo UserRepository) *UserUsecases {
	return &UserUsecases{repo: repo}
}

// Register creates a user with a hashed password. The email existence check
// and the insert are two separate steps; the unique index on users.email is
// what actually closes the race between concurrent registrations.
func (u *UserUsecases) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.InvalidData("fields cannot be empty")
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("email already in use")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. An unknown email is NotFound and a wrong
// password is Unauthorized; the two are deliberately distinguishable.
func (u *UserUsecases) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user not found")
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.Unauthorized("invalid credentials")
	}
	return user, nil
}

func (u *UserUsecases) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user not found")
	}
	return user, nil
}

// UpdateUserInput carries the optional fields of a user update. Nil means
// "not present"; a present-but-empty value on a required field is a no-op,
// not a blanking operation. Email is not updatable.
type UpdateUserInput struct {
	Username *string
	Password *string
}

// Update applies a read-then-merge partial update. updated_at advances even
// when every supplied field was empty.
func (u *UserUsecases) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*models.User, error) {
	user, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != nil && *input.Username != "" {
		user.Username = *input.Username
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now
	if err := u.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete delegates to the repository. The repository does not report whether
// the row existed, so deleting a missing id succeeds.
func (u *UserUsecases) Delete(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}

// List returns all users, newest first.
func (u *UserUsecases) List(ctx context.Context) ([]models.User, error) {
	return u.repo.List(ctx)
}
