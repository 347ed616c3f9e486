package impl

import (
	"context"
	"path/filepath"
	"testing"

	"usermgr/config"
	"usermgr/internal/domain/entity"
	"usermgr/internal/domain/repository"
	"usermgr/internal/infra/auth"
	"usermgr/internal/infra/persistence/sqlite"
	"usermgr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteUserService(t *testing.T) usecase.UserUsecase {
	t.Helper()

	cfg := &config.Config{
		SQLite: &config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "usuarios.db")},
	}
	database, err := sqlite.Open(cfg, newDiscardLogger())
	require.NoError(t, err)
	require.NoError(t, database.InitDatabase(context.Background()))
	t.Cleanup(func() { _ = database.Close() })

	return NewUserService(UserServiceParams{
		UserRepo: sqlite.NewUserRepository(database, newDiscardLogger()),
		Hasher:   auth.NewSHA256Hasher(),
		Logger:   newDiscardLogger(),
	})
}

func TestUserService_EndToEnd(t *testing.T) {
	svc := newSQLiteUserService(t)
	ctx := context.Background()

	created := svc.CreateUser(ctx, &entity.User{
		Username: "alice",
		Password: "secret1",
		Email:    "alice@x.com",
		Role:     entity.RoleUser,
	})
	require.True(t, created.Success(), created.Message())
	id := created.User().ID
	require.NotZero(t, id)
	assert.NotEqual(t, "secret1", created.User().Password)
	assert.Len(t, created.User().Password, 64)

	login := svc.Authenticate(ctx, "alice", "secret1")
	require.True(t, login.Success(), login.Message())
	assert.Equal(t, entity.RoleUser, login.User().Role)
	assert.True(t, login.User().Active)

	wrong := svc.Authenticate(ctx, "alice", "wrong")
	assert.False(t, wrong.Success())
	assert.Equal(t, "incorrect credentials", wrong.Message())

	deleted := svc.DeleteUser(ctx, id)
	require.True(t, deleted.Success(), deleted.Message())
	assert.Nil(t, deleted.User())

	_, err := svc.FindUserByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserService_EndToEnd_DuplicateAndUpdate(t *testing.T) {
	svc := newSQLiteUserService(t)
	ctx := context.Background()

	require.True(t, svc.CreateUser(ctx, entity.NewUser("alice", "secret1", "alice@x.com", entity.RoleAdmin)).Success())
	bob := svc.CreateUser(ctx, entity.NewUser("bob", "secret2", "bob@x.com", entity.RoleGuest))
	require.True(t, bob.Success())

	dup := svc.CreateUser(ctx, entity.NewUser("alice", "secret3", "other@x.com", entity.RoleUser))
	assert.False(t, dup.Success())
	assert.Equal(t, "username is already in use", dup.Message())

	edit := bob.User().Clone()
	edit.Username = "alice"
	assert.False(t, svc.UpdateUser(ctx, edit).Success())

	edit = bob.User().Clone()
	edit.Password = "changed9"
	edit.Role = entity.RoleTerapeuta
	updated := svc.UpdateUser(ctx, edit)
	require.True(t, updated.Success(), updated.Message())

	assert.True(t, svc.Authenticate(ctx, "bob", "changed9").Success())
	assert.False(t, svc.Authenticate(ctx, "bob", "secret2").Success())

	stored, err := svc.FindUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTerapeuta, stored.Role)

	all, err := svc.FindAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
