// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/middleware"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AppHandler     *handler.AppHandler
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	FileHandler    *handler.FileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	appHandler     *handler.AppHandler
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	fileHandler    *handler.FileHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		appHandler:     params.AppHandler,
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		fileHandler:    params.FileHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/status", r.appHandler.Status)
	e.GET("/stats", r.appHandler.Stats)

	// Session routes
	e.GET("/connect", r.authHandler.Connect)
	e.GET("/disconnect", r.authHandler.Disconnect)

	e.POST("/users", r.userHandler.Register)
	e.GET("/users/me", r.userHandler.Me, r.authMiddleware.Authenticate)

	authenticate := r.authMiddleware.Authenticate
	filesGroup := e.Group("/files")
	{
		filesGroup.POST("", r.fileHandler.Upload, authenticate)
		filesGroup.GET("", r.fileHandler.List, authenticate)
		filesGroup.GET("/:id", r.fileHandler.Show, authenticate)
		filesGroup.PUT("/:id/publish", r.fileHandler.Publish, authenticate)
		filesGroup.PUT("/:id/unpublish", r.fileHandler.Unpublish, authenticate)

		// Public nodes are readable without a session
		filesGroup.GET("/:id/data", r.fileHandler.Content, r.authMiddleware.OptionalAuthenticate)
	}
}
