package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenService)

	userID := uuid.New()
	tokenService.EXPECT().
		ValidateToken("valid_token").
		Return(&service.Claims{
			UserID: userID,
			Roles:  []string{"user", "admin"},
			Type:   service.TokenTypeAccess,
		}, nil)

	c, rec := newAuthTestContext(t, "Bearer valid_token")

	var seenUserID uuid.UUID
	var seenRoles []string
	next := func(c echo.Context) error {
		seenUserID, _ = deliverycontext.GetUserID(c)
		seenRoles = deliverycontext.GetRoles(c)
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seenUserID)
	assert.Equal(t, []string{"user", "admin"}, seenRoles)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenService)

	c, rec := newAuthTestContext(t, "")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenService.AssertNotCalled(t, "ValidateToken")
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenService)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenService)

	tokenService.EXPECT().
		ValidateToken("expired").
		Return(nil, errors.New("token is expired"))

	c, rec := newAuthTestContext(t, "Bearer expired")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenService)

	tokenService.EXPECT().
		ValidateToken("refresh_token").
		Return(&service.Claims{
			UserID: uuid.New(),
			Roles:  []string{"user"},
			Type:   service.TokenTypeRefresh,
		}, nil)

	c, rec := newAuthTestContext(t, "Bearer refresh_token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole_Allowed(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenService)

	c, rec := newAuthTestContext(t, "")
	deliverycontext.SetRoles(c, []string{"user", "admin"})

	require.NoError(t, m.RequireRole("admin")(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_Denied(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenService)

	c, rec := newAuthTestContext(t, "")
	deliverycontext.SetRoles(c, []string{"user"})

	require.NoError(t, m.RequireRole("admin")(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_NoRoles(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenService)

	c, rec := newAuthTestContext(t, "")

	require.NoError(t, m.RequireRole("admin")(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
