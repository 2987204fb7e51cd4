// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userapi/config"
	"userapi/internal/delivery/http/middleware"
	"userapi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	authMiddleware    *middleware.AuthMiddleware
	protectUserRoutes bool
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	protect := false
	if params.Config != nil && params.Config.Auth != nil {
		protect = params.Config.Auth.ProtectUserRoutes
	}

	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		authMiddleware:    params.AuthMiddleware,
		protectUserRoutes: protect,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	userGroup := e.Group("/users")
	{
		// The listing is always behind the token check.
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.Authenticate)

		guard := r.userRouteGuards()
		userGroup.GET("/:id", r.userHandler.GetUser, guard...)
		userGroup.POST("", r.userHandler.CreateUser, guard...)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser, guard...)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, guard...)
	}
}

func (r *router) userRouteGuards() []echo.MiddlewareFunc {
	if !r.protectUserRoutes {
		return nil
	}

	return []echo.MiddlewareFunc{r.authMiddleware.Authenticate}
}
