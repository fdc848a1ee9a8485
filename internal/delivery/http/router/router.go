// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"studyhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
	userHandler *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
		userHandler: params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/kakao", r.authHandler.KakaoLogin)
	}

	// Per-user read routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:user_id", r.userHandler.GetUser)
		userGroup.GET("/:user_id/studies", r.userHandler.Studies)
		userGroup.GET("/:user_id/likes", r.userHandler.LikedStudies)
		userGroup.GET("/:user_id/joins", r.userHandler.JoinedStudies)
		userGroup.GET("/:user_id/notices", r.userHandler.Notices)
		userGroup.GET("/:user_id/tasks/completed", r.userHandler.CompletedTasks)
	}
}
