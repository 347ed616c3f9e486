package sqlite

import (
	"context"
	"log/slog"

	deliverycontext "usermgr/internal/delivery/context"
	"usermgr/internal/domain/entity"
	domainerrors "usermgr/internal/domain/errors"
	"usermgr/internal/domain/repository"
	"usermgr/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface.
func NewUserRepository(database *Database, logger *slog.Logger) repository.UserRepository {
	return &userRepository{
		db:     database.DB(),
		logger: logger,
	}
}

// Save inserts a new row and assigns the generated ID onto user.
func (repo *userRepository) Save(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.ID = 0

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		repo.log(ctx).ErrorContext(ctx, "Failed to save user",
			slog.String("username", user.Username),
			slog.Any("error", err),
		)
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsernameTaken.WrapMessage("failed to save user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save user")
	}

	user.ID = userM.ID

	return nil
}

// Update overwrites every column of the row matching user.ID.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) (bool, error) {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("username", "password", "email", "role", "active").
		Updates(userM)
	if result.Error != nil {
		repo.log(ctx).ErrorContext(ctx, "Failed to update user",
			slog.Int64("userID", user.ID),
			slog.Any("error", result.Error),
		)
		if isUniqueConstraintViolation(result.Error) {
			return false, domainerrors.ErrUsernameTaken.WrapMessage("failed to update user")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the row matching id.
func (repo *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		repo.log(ctx).ErrorContext(ctx, "Failed to delete user",
			slog.Int64("userID", id),
			slog.Any("error", result.Error),
		)

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}

	return result.RowsAffected > 0, nil
}

// FindByID retrieves a single user by ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&userM).Error
	if err != nil {
		return nil, repo.findError(ctx, err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where("username = ?", username).Take(&userM).Error
	if err != nil {
		return nil, repo.findError(ctx, err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindAll returns every row in store order.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []*model.UserModel
	if err := repo.db.WithContext(ctx).Find(&userMs).Error; err != nil {
		repo.log(ctx).ErrorContext(ctx, "Failed to list users", slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

func (repo *userRepository) findError(ctx context.Context, err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrUserNotFound
	}

	repo.log(ctx).ErrorContext(ctx, msg, slog.Any("error", err))

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

func (repo *userRepository) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, repo.logger)
}

// fromUserDomain maps a domain entity to its persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
		Email:    user.Email,
		Role:     user.Role.String(),
		Active:   user.Active,
	}
}

// toUserDomain maps a persistence model back to a domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:       userM.ID,
		Username: userM.Username,
		Password: userM.Password,
		Email:    userM.Email,
		Role:     entity.Role(userM.Role),
		Active:   userM.Active,
	}
}
