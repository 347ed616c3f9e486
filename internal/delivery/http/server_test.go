package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"usermgr/config"
	"usermgr/internal/delivery/http/middleware"
	"usermgr/internal/delivery/http/router"
	"usermgr/internal/delivery/http/router/handler"
	"usermgr/internal/domain/entity"
	"usermgr/internal/domain/service"
	"usermgr/internal/infra/auth"
	mockusecase "usermgr/internal/mocks/usecase"
	"usermgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo   *echo.Echo
	users  *mockusecase.MockUserUsecase
	tokens service.TokenService
}

func newServerFixture(t *testing.T) *serverFixture {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.SecretKey.Access = "server_test_secret_key_long_enough"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := mockusecase.NewMockUserUsecase(t)
	sessions := mockusecase.NewMockSessionUsecase(t)

	e := NewEcho(cfg, logger, router.RouterParams{
		UserHandler:    handler.NewUserHandler(users, logger),
		AuthHandler:    handler.NewAuthHandler(sessions),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	})

	return &serverFixture{echo: e, users: users, tokens: tokens}
}

func (fx *serverFixture) bearer(t *testing.T, role entity.Role) string {
	t.Helper()

	user := entity.NewUser("caller", "digest", "caller@example.com", role)
	user.ID = 42
	token, err := fx.tokens.GenerateToken(user)
	require.NoError(t, err)

	return "Bearer " + token
}

func (fx *serverFixture) do(method, target, authorization, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	fx := newServerFixture(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = fx.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UsersRequireToken(t *testing.T) {
	fx := newServerFixture(t)

	rec := fx.do(http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fx.do(http.MethodGet, "/users", "Bearer not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_RoleGating(t *testing.T) {
	body := `{"username":"carol","password":"abc123","email":"carol@example.com","role":"USER"}`

	t.Run("USER may read", func(t *testing.T) {
		fx := newServerFixture(t)
		fx.users.EXPECT().FindAllUsers(mock.Anything).Return([]*entity.User{}, nil).Once()

		rec := fx.do(http.MethodGet, "/users", fx.bearer(t, entity.RoleUser), "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("USER may not create", func(t *testing.T) {
		fx := newServerFixture(t)

		rec := fx.do(http.MethodPost, "/users", fx.bearer(t, entity.RoleUser), body)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		fx.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("USER may not delete", func(t *testing.T) {
		fx := newServerFixture(t)

		rec := fx.do(http.MethodDelete, "/users/1", fx.bearer(t, entity.RoleUser), "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	for _, role := range entity.AllRoles.Managers() {
		t.Run(role.String()+" may create", func(t *testing.T) {
			fx := newServerFixture(t)
			fx.users.EXPECT().CreateUser(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, u *entity.User) usecase.Result {
					u.ID = 2
					u.Active = true
					return usecase.Succeed("user created successfully", u)
				}).
				Once()

			rec := fx.do(http.MethodPost, "/users", fx.bearer(t, role), body)

			assert.Equal(t, http.StatusCreated, rec.Code)
		})
	}
}
