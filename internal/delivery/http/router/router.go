// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shelf/internal/delivery/http/middleware"
	"shelf/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	LibraryHandler      *handler.LibraryHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	libraryHandler      *handler.LibraryHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		libraryHandler:      params.LibraryHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// The identity context is computed once per request on every route. A
	// missing token is fine here; a bad token is not, even on public routes.
	e.Use(r.authMiddleware.Authenticate)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Routes that require an authenticated identity
	e.GET("/me", r.userHandler.Me, r.authMiddleware.RequireAuth)

	bookGroup := e.Group("/books")
	bookGroup.Use(r.authMiddleware.RequireAuth)
	{
		bookGroup.PUT("", r.libraryHandler.SaveBook)
		bookGroup.DELETE("/:bookId", r.libraryHandler.RemoveBook)
	}
}
