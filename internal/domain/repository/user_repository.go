// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"usermgr/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence against a single table.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Save inserts a new user and assigns the generated ID onto it.
	// It fails on a duplicate username or any storage error.
	Save(ctx context.Context, user *entity.User) error

	// Update overwrites every column of the row matching user.ID.
	// It reports whether a row was affected.
	Update(ctx context.Context, user *entity.User) (bool, error)

	// Delete removes the row matching id and reports whether a row was affected.
	Delete(ctx context.Context, id int64) (bool, error)

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername returns the user with the given username, or ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll returns every user in store order.
	FindAll(ctx context.Context) ([]*entity.User, error)
}

// Store is the lifecycle of the storage backing a UserRepository.
type Store interface {
	// InitDatabase opens the connection and creates the users table if it is absent.
	InitDatabase(ctx context.Context) error

	// Close releases the connection.
	Close() error
}
