package middleware

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/errors"
	mockUsecase "adboard/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestAuthMiddleware(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{Auth: authUC, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	whoami := func(c echo.Context) error {
		p, _ := GetPrincipal(c)

		return c.String(http.StatusOK, p.Username+"/"+p.Role.String())
	}

	e := echo.New()
	e.GET("/me", whoami, m.Authenticate)
	e.GET("/admin", whoami, m.Authenticate, m.RequireRole(entity.RoleAdmin))

	return e, authUC
}

func request(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthenticate_Bearer(t *testing.T) {
	e, authUC := createTestAuthMiddleware(t)

	authUC.EXPECT().ParsePrincipal(mock.Anything, "good.jwt").
		Return(entity.Principal{Username: "u1@example.com", Role: entity.RoleUser}, nil)

	rec := request(e, "/me", "Bearer good.jwt")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1@example.com/USER", rec.Body.String())
}

func TestAuthenticate_BearerRejected(t *testing.T) {
	e, authUC := createTestAuthMiddleware(t)

	authUC.EXPECT().ParsePrincipal(mock.Anything, "expired.jwt").
		Return(entity.Principal{}, errors.WithStack(domainerrors.ErrUnauthenticated))

	rec := request(e, "/me", "Bearer expired.jwt")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthenticate_Basic(t *testing.T) {
	e, authUC := createTestAuthMiddleware(t)

	authUC.EXPECT().Authenticate(mock.Anything, "admin@example.com", "Password1").
		Return(&entity.User{Username: "admin@example.com", Role: entity.RoleAdmin}, nil)

	credentials := base64.StdEncoding.EncodeToString([]byte("admin@example.com:Password1"))
	rec := request(e, "/admin", "Basic "+credentials)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com/ADMIN", rec.Body.String())
}

func TestAuthenticate_BasicWrongPassword(t *testing.T) {
	e, authUC := createTestAuthMiddleware(t)

	authUC.EXPECT().Authenticate(mock.Anything, "u1@example.com", "nope").
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	credentials := base64.StdEncoding.EncodeToString([]byte("u1@example.com:nope"))
	rec := request(e, "/me", "Basic "+credentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthenticate_RejectedHeaders(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{name: "missing header", authorization: ""},
		{name: "unknown scheme", authorization: "Digest abc"},
		{name: "malformed basic", authorization: "Basic !!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createTestAuthMiddleware(t)

			rec := request(e, "/me", tt.authorization)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	e, authUC := createTestAuthMiddleware(t)

	authUC.EXPECT().ParsePrincipal(mock.Anything, "user.jwt").
		Return(entity.Principal{Username: "u1@example.com", Role: entity.RoleUser}, nil)

	rec := request(e, "/admin", "Bearer user.jwt")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
