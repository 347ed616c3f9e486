package handler

import (
	"net/http"

	"usermgr/internal/delivery/http/metrics"
	"usermgr/internal/delivery/http/response"
	"usermgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	sessions usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(sessions usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates the credentials and returns an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.sessions.Login(c.Request().Context(), usecase.LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	metrics.ObserveOperation("login", err == nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(output.ExpiresIn.Seconds()),
		User:        toUserResponse(output.User),
	}, "Login successful")
}
