// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"usermgr/internal/domain/entity"
)

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layers (console menu, HTTP handlers) depend on.
// Mutating operations never return errors; every outcome is a Result.
type UserUsecase interface {
	// CreateUser validates, digests and persists a new user. The user is
	// mutated in place: its password becomes a digest, it is activated and
	// it receives its ID.
	CreateUser(ctx context.Context, user *entity.User) Result

	// UpdateUser re-validates and overwrites an existing user.
	UpdateUser(ctx context.Context, user *entity.User) Result

	// DeleteUser removes the user with the given ID.
	DeleteUser(ctx context.Context, id int64) Result

	// Authenticate checks a username and plaintext password pair.
	Authenticate(ctx context.Context, username, password string) Result

	FindUserByID(ctx context.Context, id int64) (*entity.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)
	FindAllUsers(ctx context.Context) ([]*entity.User, error)

	// HashPassword returns the digest the service would store for password.
	HashPassword(password string) string
}
