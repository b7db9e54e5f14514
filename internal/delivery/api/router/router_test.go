package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"adboard/config"
	"adboard/internal/delivery/api/middleware"
	"adboard/internal/delivery/api/router/handler"
	"adboard/internal/delivery/api/validator"
	"adboard/internal/domain/entity"
	"adboard/internal/infra/metrics"
	mockUsecase "adboard/internal/mocks/usecase"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo     *echo.Echo
	auth     *mockUsecase.MockAuthUsecase
	ads      *mockUsecase.MockAdUsecase
	users    *mockUsecase.MockUserUsecase
	comments *mockUsecase.MockCommentUsecase
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	fx := routerFixtures{
		auth:     mockUsecase.NewMockAuthUsecase(t),
		ads:      mockUsecase.NewMockAdUsecase(t),
		users:    mockUsecase.NewMockUserUsecase(t),
		comments: mockUsecase.NewMockCommentUsecase(t),
	}

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.auth, Logger: logger}),
		AdHandler:      handler.NewAdHandler(handler.AdHandlerParams{AdUC: fx.ads, Config: cfg, Logger: logger}),
		CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: fx.comments, Logger: logger}),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.users, Config: cfg, Logger: logger}),
		AdminHandler:   handler.NewAdminHandler(handler.AdminHandlerParams{UserUC: fx.users}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Auth: fx.auth, Logger: logger}),
		Metrics:        metrics.New(),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)
	fx.echo = e

	return fx
}

func (fx routerFixtures) serve(method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRoutes_Public(t *testing.T) {
	fx := createTestRouter(t)

	fx.ads.EXPECT().GetAdImage(mock.Anything, int64(1)).Return([]byte("\x89PNG\r\n\x1a\n"), nil)

	assert.Equal(t, http.StatusOK, fx.serve(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, fx.serve(http.MethodGet, "/metrics", "").Code)
	assert.Equal(t, http.StatusOK, fx.serve(http.MethodGet, "/ads/1/image", "").Code)
}

func TestRoutes_RequireCredentials(t *testing.T) {
	fx := createTestRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/ads"},
		{http.MethodGet, "/ads/1/qr"},
		{http.MethodGet, "/ads/me"},
		{http.MethodGet, "/ads/1"},
		{http.MethodDelete, "/ads/1"},
		{http.MethodGet, "/ads/1/comments"},
		{http.MethodGet, "/users/me"},
		{http.MethodGet, "/users/u1@example.com/image"},
		{http.MethodPost, "/users/set_password"},
		{http.MethodGet, "/admin/users"},
	} {
		rec := fx.serve(route.method, route.path, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.method+" "+route.path)
	}
}

func TestRoutes_ListAdsSignedIn(t *testing.T) {
	fx := createTestRouter(t)
	principal := entity.Principal{Username: "u1@example.com", Role: entity.RoleUser}

	fx.auth.EXPECT().ParsePrincipal(mock.Anything, "user.jwt").Return(principal, nil)
	fx.ads.EXPECT().ListAds(mock.Anything).Return(&usecase.AdsOutput{}, nil)

	assert.Equal(t, http.StatusOK, fx.serve(http.MethodGet, "/ads", "user.jwt").Code)
}

func TestRoutes_MyAdsIsNotAnID(t *testing.T) {
	fx := createTestRouter(t)
	principal := entity.Principal{Username: "u1@example.com", Role: entity.RoleUser}

	fx.auth.EXPECT().ParsePrincipal(mock.Anything, "user.jwt").Return(principal, nil)
	fx.ads.EXPECT().ListMyAds(mock.Anything, principal).Return(&usecase.AdsOutput{}, nil)

	assert.Equal(t, http.StatusOK, fx.serve(http.MethodGet, "/ads/me", "user.jwt").Code)
}

func TestRoutes_AdminGate(t *testing.T) {
	fx := createTestRouter(t)
	user := entity.Principal{Username: "u1@example.com", Role: entity.RoleUser}
	admin := entity.Principal{Username: "admin@example.com", Role: entity.RoleAdmin}

	fx.auth.EXPECT().ParsePrincipal(mock.Anything, "user.jwt").Return(user, nil)
	fx.auth.EXPECT().ParsePrincipal(mock.Anything, "admin.jwt").Return(admin, nil)
	fx.users.EXPECT().ListUsers(mock.Anything, admin).Return([]*usecase.UserOutput{}, nil)

	assert.Equal(t, http.StatusForbidden, fx.serve(http.MethodGet, "/admin/users", "user.jwt").Code)
	assert.Equal(t, http.StatusOK, fx.serve(http.MethodGet, "/admin/users", "admin.jwt").Code)
}
