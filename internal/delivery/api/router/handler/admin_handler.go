package handler

import (
	"net/http"

	"adboard/internal/delivery/api/response"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// AdminHandler serves the administrator routes.
type AdminHandler struct {
	userUC usecase.UserUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{userUC: params.UserUC}
}

// ListUsers returns every account.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	principal, err := principalOrReject(c)
	if err != nil {
		return done(err)
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), principal)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count":   len(users),
		"results": users,
	})
}
