package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"usermgr/internal/domain/entity"
	domainerrors "usermgr/internal/domain/errors"
	"usermgr/internal/domain/repository"
	mockusecase "usermgr/internal/mocks/usecase"
	"usermgr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const aliceDigest = "6ca13d52ca70c883e0f0bb101e425a89e8624de51db2d2392593af6a84118090"

type fakePasswords struct {
	secrets []string
	prompts []string
}

func (f *fakePasswords) ReadPassword(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	secret := f.secrets[0]
	f.secrets = f.secrets[1:]

	return secret, nil
}

func runMenu(t *testing.T, users usecase.UserUsecase, script string, opts ...Option) string {
	t.Helper()

	var out bytes.Buffer
	menu := NewMenu(users, strings.NewReader(script), &out, opts...)
	require.NoError(t, menu.Run(context.Background()))

	return out.String()
}

func alice() *entity.User {
	return &entity.User{
		ID:       1,
		Username: "alice",
		Password: aliceDigest,
		Email:    "alice@example.com",
		Role:     entity.RoleAdmin,
		Active:   true,
	}
}

func TestMenu_ExitAndInvalidOption(t *testing.T) {
	users := mockusecase.NewMockUserUsecase(t)

	out := runMenu(t, users, "9\nabc\n0\n")

	assert.Equal(t, 2, strings.Count(out, "invalid option"))
	assert.Contains(t, out, "goodbye")
}

func TestMenu_EndOfInputStops(t *testing.T) {
	users := mockusecase.NewMockUserUsecase(t)

	out := runMenu(t, users, "")

	assert.Contains(t, out, "Choose an option")
	assert.NotContains(t, out, "goodbye")
}

func TestMenu_ListUsers(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().FindAllUsers(mock.Anything).Return([]*entity.User{alice()}, nil).Once()

		out := runMenu(t, users, "1\n0\n")

		assert.Contains(t, out, "alice@example.com")
		assert.Contains(t, out, "ADMIN")
		assert.Contains(t, out, "Total: 1 users")
		assert.NotContains(t, out, aliceDigest)
	})

	t.Run("empty", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().FindAllUsers(mock.Anything).Return(nil, nil).Once()

		out := runMenu(t, users, "1\n0\n")

		assert.Contains(t, out, "no users found")
	})
}

func TestMenu_FindByID(t *testing.T) {
	t.Run("found shows a digest preview", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().FindUserByID(mock.Anything, int64(1)).Return(alice(), nil).Once()

		out := runMenu(t, users, "2\n1\n0\n")

		assert.Contains(t, out, "Username: alice")
		assert.Contains(t, out, "Password (digest): "+aliceDigest[:17]+"...")
		assert.NotContains(t, out, aliceDigest)
	})

	t.Run("not found", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().FindUserByID(mock.Anything, int64(7)).Return(nil, repository.ErrUserNotFound).Once()

		out := runMenu(t, users, "2\n7\n0\n")

		assert.Contains(t, out, "user with ID 7 not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)

		out := runMenu(t, users, "2\nseven\n0\n")

		assert.Contains(t, out, "invalid ID")
	})
}

func TestMenu_FindByUsername(t *testing.T) {
	users := mockusecase.NewMockUserUsecase(t)
	users.EXPECT().FindUserByUsername(mock.Anything, "ghost").Return(nil, repository.ErrUserNotFound).Once()

	out := runMenu(t, users, "3\nghost\n0\n")

	assert.Contains(t, out, "user 'ghost' not found")
}

func TestMenu_CreateUser(t *testing.T) {
	t.Run("selected role", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().
			CreateUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
				return u.Username == "alice" && u.Password == "abc123" &&
					u.Email == "alice@example.com" && u.Role == entity.RoleMedico
			})).
			RunAndReturn(func(_ context.Context, u *entity.User) usecase.Result {
				u.ID = 12
				return usecase.Succeed("user created successfully", u)
			}).
			Once()

		out := runMenu(t, users, "4\nalice\nabc123\nalice@example.com\n4\n0\n")

		assert.Contains(t, out, "user created successfully")
		assert.Contains(t, out, "assigned ID: 12")
	})

	t.Run("invalid role falls back to USER", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().
			CreateUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
				return u.Role == entity.RoleUser
			})).
			Return(usecase.Fail(domainerrors.ErrUsernameTaken, "username is already in use")).
			Once()

		out := runMenu(t, users, "4\nalice\nabc123\nalice@example.com\n9\n0\n")

		assert.Contains(t, out, "invalid option, using USER")
		assert.Contains(t, out, "username is already in use")
		assert.NotContains(t, out, "assigned ID")
	})

	t.Run("password reader is used for secrets", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().
			CreateUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
				return u.Password == "s3cret"
			})).
			Return(usecase.Succeed("user created successfully", alice())).
			Once()
		passwords := &fakePasswords{secrets: []string{"s3cret"}}

		out := runMenu(t, users, "4\nalice\nalice@example.com\n1\n0\n", WithPasswordReader(passwords))

		assert.Equal(t, []string{"Password: "}, passwords.prompts)
		assert.NotContains(t, out, "s3cret")
	})
}

func TestMenu_UpdateUser(t *testing.T) {
	t.Run("blank input keeps the current values", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().FindUserByID(mock.Anything, int64(1)).Return(alice(), nil).Once()
		users.EXPECT().
			UpdateUser(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
				return u.ID == 1 && u.Username == "alice" && u.Email == "new@example.com" &&
					u.Password == aliceDigest && u.Role == entity.RoleAdmin && !u.Active
			})).
			Return(usecase.Succeed("user updated successfully", alice())).
			Once()

		out := runMenu(t, users, "5\n1\n\nnew@example.com\n\n\nn\n0\n")

		assert.Contains(t, out, "user updated successfully")
	})

	t.Run("missing user", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().FindUserByID(mock.Anything, int64(4)).Return(nil, repository.ErrUserNotFound).Once()

		out := runMenu(t, users, "5\n4\n0\n")

		assert.Contains(t, out, "user not found")
	})
}

func TestMenu_DeleteUser(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().FindUserByID(mock.Anything, int64(1)).Return(alice(), nil).Once()
		users.EXPECT().DeleteUser(mock.Anything, int64(1)).Return(usecase.Succeed("user deleted successfully", nil)).Once()

		out := runMenu(t, users, "6\n1\ny\n0\n")

		assert.Contains(t, out, "user deleted successfully")
	})

	t.Run("cancelled", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().FindUserByID(mock.Anything, int64(1)).Return(alice(), nil).Once()

		out := runMenu(t, users, "6\n1\nn\n0\n")

		assert.Contains(t, out, "operation cancelled")
	})
}

func TestMenu_Authenticate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().Authenticate(mock.Anything, "alice", "abc123").
			Return(usecase.Succeed("authentication successful", alice())).
			Once()

		out := runMenu(t, users, "7\nalice\nabc123\n0\n")

		assert.Contains(t, out, "authentication successful")
		assert.Contains(t, out, "welcome, alice!")
		assert.Contains(t, out, "role: ADMIN (Administrator)")
	})

	t.Run("failure", func(t *testing.T) {
		users := mockusecase.NewMockUserUsecase(t)
		users.EXPECT().Authenticate(mock.Anything, "alice", "wrong1").
			Return(usecase.Fail(domainerrors.ErrInvalidCredentials, "incorrect credentials")).
			Once()

		out := runMenu(t, users, "7\nalice\nwrong1\n0\n")

		assert.Contains(t, out, "incorrect credentials")
		assert.NotContains(t, out, "welcome")
	})
}

func TestMenu_HashPassword(t *testing.T) {
	users := mockusecase.NewMockUserUsecase(t)
	users.EXPECT().HashPassword("abc123").Return(aliceDigest).Once()

	out := runMenu(t, users, "8\nabc123\n0\n")

	assert.Contains(t, out, aliceDigest)
}

func TestRow_PadsColumns(t *testing.T) {
	got := row("1", "alice", "alice@example.com", "ADMIN", "yes")

	assert.Equal(t, "1     alice                alice@example.com              ADMIN      yes", got)
}
