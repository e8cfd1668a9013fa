package auth

import (
	"errors"

	"github.com/openbounty/bounty-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest at the default cost.
// Emptiness is the caller's problem; this only fails if bcrypt itself does.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.Infra("hashing password", err)
	}
	return string(hash), nil
}

// VerifyPassword recomputes and compares. A wrong password returns (false, nil);
// only a malformed stored hash is an error.
func VerifyPassword(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, domain.Infra("verifying password", err)
}
