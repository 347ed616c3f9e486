// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "usermgr/internal/delivery/context"
	"usermgr/internal/domain/entity"
	domainerrors "usermgr/internal/domain/errors"
	"usermgr/internal/domain/repository"
	"usermgr/internal/domain/service"
	"usermgr/internal/domain/validation"
	"usermgr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// digestLengthThreshold separates plaintext passwords from stored digests
// during update: shorter values are treated as plaintext and re-hashed.
const digestLengthThreshold = 40

const (
	msgUserCreated      = "user created successfully"
	msgUserUpdated      = "user updated successfully"
	msgUserDeleted      = "user deleted successfully"
	msgAuthenticated    = "authentication successful"
	msgUsernameTaken    = "username is already in use"
	msgUserNotFound     = "user does not exist"
	msgSaveFailed       = "error saving the user"
	msgUpdateFailed     = "error updating the user"
	msgDeleteFailed     = "error deleting the user"
	msgUpdateIDRequired = "user ID is required to update"
	msgIDRequired       = "ID is required"
	msgUsernameRequired = "username is required"
	msgPasswordRequired = "password is required"
	msgBadCredentials   = "incorrect credentials"
	msgAccountDisabled  = "account is disabled"
	msgLookupFailed     = "error looking up the user"
	violationSeparator  = ", "
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	validator *validation.UserValidator
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Validator *validation.UserValidator `optional:"true"`
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	validator := params.Validator
	if validator == nil {
		validator = validation.NewUserValidator()
	}

	return &userService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		validator: validator,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser validates, checks uniqueness, digests the password, activates and saves the user.
func (srv *userService) CreateUser(ctx context.Context, user *entity.User) usecase.Result {
	if violations := srv.validator.Validate(user); len(violations) > 0 {
		return usecase.Fail(domainerrors.ErrValidationFailed, strings.Join(violations, violationSeparator))
	}

	srv.log(ctx).Info("Creating user", slog.String("username", user.Username), slog.String("role", user.Role.String()))

	_, err := srv.userRepo.FindByUsername(ctx, user.Username)
	switch {
	case err == nil:
		return usecase.Fail(domainerrors.ErrUsernameTaken, msgUsernameTaken)
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to check username", slog.Any("error", err))
		return usecase.Fail(domainerrors.ErrStorageFailed, msgSaveFailed)
	}

	user.Password = srv.hasher.Encode(user.Password)
	user.Active = true

	if err := srv.userRepo.Save(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to save user", slog.String("username", user.Username), slog.Any("error", err))
		return usecase.Fail(domainerrors.ErrStorageFailed, msgSaveFailed)
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", user.ID))

	return usecase.Succeed(msgUserCreated, user)
}

// UpdateUser re-validates the user, checks it exists and that a new username
// is free, re-hashes a plaintext password and overwrites the stored row.
func (srv *userService) UpdateUser(ctx context.Context, user *entity.User) usecase.Result {
	if user == nil || user.ID == 0 {
		return usecase.Fail(domainerrors.ErrUserIDRequired, msgUpdateIDRequired)
	}

	if violations := srv.validator.Validate(user); len(violations) > 0 {
		return usecase.Fail(domainerrors.ErrValidationFailed, strings.Join(violations, violationSeparator))
	}

	existing, err := srv.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return srv.lookupFailure(ctx, err)
	}

	if user.Username != existing.Username {
		_, err := srv.userRepo.FindByUsername(ctx, user.Username)
		switch {
		case err == nil:
			return usecase.Fail(domainerrors.ErrUsernameTaken, msgUsernameTaken)
		case !errors.Is(err, repository.ErrUserNotFound):
			srv.log(ctx).Error("Failed to check username", slog.Any("error", err))
			return usecase.Fail(domainerrors.ErrStorageFailed, msgUpdateFailed)
		}
	}

	// A value of digest length or longer is assumed to be the stored digest
	// and is kept as is.
	if user.Password != existing.Password && len(user.Password) < digestLengthThreshold {
		user.Password = srv.hasher.Encode(user.Password)
	}

	affected, err := srv.userRepo.Update(ctx, user)
	if err != nil || !affected {
		srv.log(ctx).Error("Failed to update user",
			slog.Int64("userID", user.ID),
			slog.Bool("affected", affected),
			slog.Any("error", err),
		)
		return usecase.Fail(domainerrors.ErrStorageFailed, msgUpdateFailed)
	}

	srv.log(ctx).Info("User updated", slog.Int64("userID", user.ID))

	return usecase.Succeed(msgUserUpdated, user)
}

// DeleteUser removes an existing user.
func (srv *userService) DeleteUser(ctx context.Context, id int64) usecase.Result {
	if id == 0 {
		return usecase.Fail(domainerrors.ErrUserIDRequired, msgIDRequired)
	}

	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		return srv.lookupFailure(ctx, err)
	}

	affected, err := srv.userRepo.Delete(ctx, id)
	if err != nil || !affected {
		srv.log(ctx).Error("Failed to delete user",
			slog.Int64("userID", id),
			slog.Bool("affected", affected),
			slog.Any("error", err),
		)
		return usecase.Fail(domainerrors.ErrStorageFailed, msgDeleteFailed)
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))

	return usecase.Succeed(msgUserDeleted, nil)
}

// Authenticate checks the credentials. An unknown username and a wrong
// password yield the same failure.
func (srv *userService) Authenticate(ctx context.Context, username, password string) usecase.Result {
	if strings.TrimSpace(username) == "" {
		return usecase.Fail(domainerrors.ErrCredentialsRequired, msgUsernameRequired)
	}
	if password == "" {
		return usecase.Fail(domainerrors.ErrCredentialsRequired, msgPasswordRequired)
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to look up user", slog.Any("error", err))
		}
		return usecase.Fail(domainerrors.ErrInvalidCredentials, msgBadCredentials)
	}

	if !user.Active {
		srv.log(ctx).Warn("Login attempt on disabled account", slog.Int64("userID", user.ID))
		return usecase.Fail(domainerrors.ErrAccountDisabled, msgAccountDisabled)
	}

	if !srv.hasher.Matches(password, user.Password) {
		return usecase.Fail(domainerrors.ErrInvalidCredentials, msgBadCredentials)
	}

	srv.log(ctx).Info("User authenticated", slog.Int64("userID", user.ID))

	return usecase.Succeed(msgAuthenticated, user)
}

// FindUserByID returns the user with the given ID. Zero is never a stored ID.
func (srv *userService) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	if id == 0 {
		return nil, repository.ErrUserNotFound
	}

	return srv.userRepo.FindByID(ctx, id)
}

// FindUserByUsername returns the user with the given username.
func (srv *userService) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, repository.ErrUserNotFound
	}

	return srv.userRepo.FindByUsername(ctx, username)
}

// FindAllUsers returns every stored user.
func (srv *userService) FindAllUsers(ctx context.Context) ([]*entity.User, error) {
	return srv.userRepo.FindAll(ctx)
}

// HashPassword exposes the configured digest.
func (srv *userService) HashPassword(password string) string {
	return srv.hasher.Encode(password)
}

func (srv *userService) lookupFailure(ctx context.Context, err error) usecase.Result {
	if errors.Is(err, repository.ErrUserNotFound) {
		return usecase.Fail(domainerrors.ErrUserNotFound, msgUserNotFound)
	}

	srv.log(ctx).Error("Failed to look up user", slog.Any("error", err))

	return usecase.Fail(domainerrors.ErrStorageFailed, msgLookupFailed)
}
