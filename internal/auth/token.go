package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/openbounty/bounty-api/internal/domain"
)

// DefaultExpireHours is the token lifetime used when none is configured.
const DefaultExpireHours = 24

// Claims is the validated payload of a session token: who, until when.
type Claims struct {
	Subject   uuid.UUID
	ExpiresAt time.Time
}

// TokenService issues and validates stateless HS256 session tokens.
// The secret and expiry window are fixed at construction; business code
// never reads the environment.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expireHours int) *TokenService {
	if expireHours <= 0 {
		expireHours = DefaultExpireHours
	}
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expireHours) * time.Hour,
	}
}

// Issue signs a token for the given subject, expiring after the configured window.
func (s *TokenService) Issue(subject uuid.UUID) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.Infra("signing token", err)
	}
	return signed, nil
}

// Validate checks signature, structure and expiry. Every failure collapses to
// Unauthorized: callers cannot tell expired from forged from garbage.
func (s *TokenService) Validate(tokenString string) (Claims, error) {
	var registered jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &registered, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Claims{}, domain.Unauthorized("invalid token")
	}

	subject, err := uuid.Parse(registered.Subject)
	if err != nil {
		return Claims{}, domain.Unauthorized("invalid token")
	}
	if registered.ExpiresAt == nil {
		return Claims{}, domain.Unauthorized("invalid token")
	}
	return Claims{Subject: subject, ExpiresAt: registered.ExpiresAt.Time}, nil
}
