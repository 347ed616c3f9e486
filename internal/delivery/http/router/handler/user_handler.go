package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "usermgr/internal/delivery/context"
	"usermgr/internal/delivery/http/metrics"
	"usermgr/internal/delivery/http/response"
	"usermgr/internal/domain/entity"
	domainerrors "usermgr/internal/domain/errors"
	"usermgr/internal/domain/repository"
	"usermgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.FindAllUsers(c.Request().Context())
	if err != nil {
		return h.lookupError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users), "")
}

// GetUser returns the user identified by :id.
func (h *UserHandler) GetUser(c echo.Context) error {
	var param UserIDParam
	if err := c.Bind(&param); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user ID")
	}
	if err := c.Validate(&param); err != nil {
		return err
	}

	user, err := h.uc.FindUserByID(c.Request().Context(), param.ID)
	if err != nil {
		return h.lookupError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// GetUserByUsername returns the user identified by :username.
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	user, err := h.uc.FindUserByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return h.lookupError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// CreateUser creates a user from the request body.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var input CreateUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	user := &entity.User{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		Role:     parseRole(input.Role),
	}

	result := h.uc.CreateUser(c.Request().Context(), user)
	metrics.ObserveOperation("create", result.Success())

	return h.respond(c, http.StatusCreated, result)
}

// UpdateUser merges the request body into the user identified by :id.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var input UpdateUserRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	ctx := c.Request().Context()
	current, err := h.uc.FindUserByID(ctx, input.ID)
	if err != nil {
		return h.lookupError(c, err)
	}

	result := h.uc.UpdateUser(ctx, input.applyUpdate(current))
	metrics.ObserveOperation("update", result.Success())

	return h.respond(c, http.StatusOK, result)
}

// DeleteUser removes the user identified by :id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	var param UserIDParam
	if err := c.Bind(&param); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user ID")
	}
	if err := c.Validate(&param); err != nil {
		return err
	}

	result := h.uc.DeleteUser(c.Request().Context(), param.ID)
	metrics.ObserveOperation("delete", result.Success())

	return h.respond(c, http.StatusOK, result)
}

func (h *UserHandler) respond(c echo.Context, status int, result usecase.Result) error {
	if !result.Success() {
		return errors.WithStack(result.Err())
	}

	return response.Success(c, status, toUserResponse(result.User()), result.Message())
}

func (h *UserHandler) lookupError(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("user lookup failed", slog.Any("error", err))

	return domainerrors.ErrStorageFailed.WithDetails("error looking up the user")
}
