// Package middleware contains the Echo middlewares of the HTTP delivery.
package middleware

import (
	"slices"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes with JWT authentication and role checks.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the Bearer access token and stores the caller's
// identity on the request context for downstream handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_MISSING", "缺少存取權杖")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_MISSING", "授權標頭必須是 Bearer 權杖")
		}

		claims, err := m.tokenService.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "無效或已過期的存取權杖")
		}

		// A refresh token must never open an authenticated request.
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "TOKEN_INVALID", "無效或已過期的存取權杖")
		}

		deliverycontext.SetUserID(c, claims.UserID)
		deliverycontext.SetRoles(c, claims.Roles)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole checks that the authenticated caller carries the given role.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles := deliverycontext.GetRoles(c)
			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "需要 "+requiredRole+" 權限")
			}

			return next(c)
		}
	}
}
