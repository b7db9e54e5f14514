// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"adboard/internal/delivery/api/response"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves login and registration.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=4,max=32"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

// RegisterRequest represents the request body for registering an account
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,email,min=4,max=32"`
	Password  string `json:"password" validate:"required,min=8,max=64"`
	FirstName string `json:"firstName" validate:"required,min=2,max=16"`
	LastName  string `json:"lastName" validate:"required,min=2,max=16"`
	Phone     string `json:"phone" validate:"required,phone"`
	Role      string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// Login handles the login request and returns an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return done(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Register handles account registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return done(err)
	}

	created, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !created {
		return response.HandleAppError(c, domainerrors.ErrUserAlreadyExists)
	}

	return response.Success(c, http.StatusCreated, map[string]bool{"registered": true})
}
