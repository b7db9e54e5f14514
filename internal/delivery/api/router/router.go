// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"adboard/internal/delivery/api/middleware"
	"adboard/internal/delivery/api/router/handler"
	"adboard/internal/domain/entity"
	"adboard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AdHandler      *handler.AdHandler
	CommentHandler *handler.CommentHandler
	UserHandler    *handler.UserHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	adHandler      *handler.AdHandler
	commentHandler *handler.CommentHandler
	userHandler    *handler.UserHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		adHandler:      params.AdHandler,
		commentHandler: params.CommentHandler,
		userHandler:    params.UserHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	e.POST("/login", r.authHandler.Login)
	e.POST("/register", r.authHandler.Register)

	auth := r.authMiddleware.Authenticate

	// Ads. Only the ad image is public.
	adsGroup := e.Group("/ads")
	{
		adsGroup.GET("/:id/image", r.adHandler.GetAdImage)

		adsGroup.GET("", r.adHandler.ListAds, auth)
		adsGroup.GET("/:id/qr", r.adHandler.GetAdQRCode, auth)
		adsGroup.GET("/me", r.adHandler.ListMyAds, auth)
		adsGroup.POST("", r.adHandler.CreateAd, auth)
		adsGroup.GET("/:id", r.adHandler.GetAd, auth)
		adsGroup.PATCH("/:id", r.adHandler.UpdateAd, auth)
		adsGroup.DELETE("/:id", r.adHandler.DeleteAd, auth)
		adsGroup.PATCH("/:id/image", r.adHandler.UpdateAdImage, auth)

		adsGroup.GET("/:id/comments", r.commentHandler.ListComments, auth)
		adsGroup.POST("/:id/comments", r.commentHandler.AddComment, auth)
		adsGroup.PATCH("/:id/comments/:commentId", r.commentHandler.UpdateComment, auth)
		adsGroup.DELETE("/:id/comments/:commentId", r.commentHandler.DeleteComment, auth)
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.GET("/:username/image", r.userHandler.GetUserImage, auth)
		usersGroup.GET("/me", r.userHandler.GetMe, auth)
		usersGroup.PATCH("/me", r.userHandler.UpdateMe, auth)
		usersGroup.POST("/set_password", r.userHandler.SetPassword, auth)
		usersGroup.PATCH("/me/image", r.userHandler.UpdateMyImage, auth)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(auth)                                             // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}
}
