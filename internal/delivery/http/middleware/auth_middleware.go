package middleware

import (
	"strings"

	deliverycontext "usermgr/internal/delivery/context"
	"usermgr/internal/delivery/http/response"
	"usermgr/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and role authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores its claims on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if !claims.Role.IsValid() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries an unknown role")
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireManager rejects callers whose role may not create, edit or delete users.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := deliverycontext.GetClaims(c)
		if claims == nil {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
		}

		if !claims.Role.CanManageUsers() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: role '"+claims.Role.String()+"' cannot manage users")
		}

		return next(c)
	}
}
