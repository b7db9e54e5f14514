package handler

import (
	"log/slog"
	"net/http"

	"adboard/config"
	"adboard/internal/delivery/api/response"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Config *config.Config
	Logger *slog.Logger
}

// UserHandler serves the account routes of the signed-in user.
type UserHandler struct {
	userUC    usecase.UserUsecase
	maxUpload int64
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		maxUpload: uploadLimit(params.Config),
		logger:    params.Logger,
	}
}

// GetMe returns the caller's account.
func (h *UserHandler) GetMe(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	user, err := h.userUC.GetCurrentUser(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	var input usecase.UpdateUserInput
	if err := bindAndValidate(c, &input); err != nil {
		return done(err)
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), principal, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// SetPassword changes the caller's password.
func (h *UserHandler) SetPassword(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	var input usecase.SetPasswordInput
	if err := bindAndValidate(c, &input); err != nil {
		return done(err)
	}

	if err := h.userUC.SetPassword(c.Request().Context(), principal, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated"})
}

// UpdateMyImage replaces the caller's avatar.
func (h *UserHandler) UpdateMyImage(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	image, err := formImage(c, "image", h.maxUpload)
	if err != nil {
		return done(err)
	}
	if image == nil {
		return response.HandleAppError(c, domainerrors.ErrEmptyImage)
	}

	if err := h.userUC.UpdateUserImage(c.Request().Context(), principal, image); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Image updated"})
}

// GetUserImage streams the avatar of the named user.
func (h *UserHandler) GetUserImage(c echo.Context) error {
	data, err := h.userUC.GetUserImage(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return imageBlob(c, data)
}
