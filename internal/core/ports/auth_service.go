package ports

import (
	"context"

	"github.com/sevakendra/portal-api/internal/core/domain"
)

// TokenClaims are the identity claims embedded in a bearer token at
// issuance and recovered by VerifyToken.
type TokenClaims struct {
	UserID string
	Phone  string
	Role   string
}

// AuthResult is returned by Register and Login: the public user
// projection plus a signed bearer token.
type AuthResult struct {
	User  domain.PublicProfile
	Token string
}

// AuthService defines registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, name, phone, password string) (*AuthResult, error)
	Login(ctx context.Context, phone, password string) (*AuthResult, error)
	VerifyToken(token string) (*TokenClaims, error)
}
