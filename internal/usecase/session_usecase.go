package usecase

import (
	"context"
	"time"

	"usermgr/internal/domain/entity"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput returns the access token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *entity.User
}

// SessionUsecase issues access tokens for authenticated users.
type SessionUsecase interface {
	// Login authenticates the credentials and issues a signed access token.
	// Failures are returned as domain errors.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
