package middleware

import (
	"log/slog"
	"strings"

	"adboard/internal/delivery/api/response"
	"adboard/internal/domain/entity"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const principalKey = "principal"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves the caller from a bearer token, or from HTTP Basic credentials.
type AuthMiddleware struct {
	auth   usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{auth: params.Auth, logger: params.Logger}
}

// Authenticate rejects requests without valid credentials and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		ctx := c.Request().Context()

		var principal entity.Principal
		switch {
		case strings.HasPrefix(authHeader, "Bearer "):
			p, err := m.auth.ParsePrincipal(ctx, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				return response.HandleAppError(c, err)
			}
			principal = p
		case strings.HasPrefix(authHeader, "Basic "):
			username, password, ok := c.Request().BasicAuth()
			if !ok {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Malformed basic credentials")
			}

			user, err := m.auth.Authenticate(ctx, username, password)
			if err != nil {
				return response.HandleAppError(c, err)
			}
			principal = entity.Principal{Username: user.Username, Role: user.Role}
		default:
			return response.Unauthorized(c, "UNAUTHENTICATED", "Unsupported authorization scheme")
		}

		c.Set(principalKey, principal)

		return next(c)
	}
}

// RequireRole only lets through callers with the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
			}

			if principal.Role != role {
				m.logger.Warn("Role check failed",
					slog.String("username", principal.Username),
					slog.String("required", role.String()),
				)

				return response.Forbidden(c, "FORBIDDEN", "Insufficient permissions")
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the caller resolved by Authenticate.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(entity.Principal)
	if !ok || principal.IsZero() {
		return entity.Principal{}, false
	}

	return principal, true
}

// SetPrincipal stores the caller on the context.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(principalKey, principal)
}
