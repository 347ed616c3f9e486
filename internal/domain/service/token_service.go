package service

import (
	"time"

	"usermgr/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID   int64       `json:"uid"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating access tokens.
// This abstracts the details of token creation from the delivery layer.
type TokenService interface {
	// GenerateToken creates a signed access token for an authenticated user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured lifetime of access tokens.
	TokenDuration() time.Duration
}
