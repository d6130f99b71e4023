// Package router registers the console HTTP routes.
package router

import (
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/middleware"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/delivery/http/router/handler"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccessHandler  *handler.AccessHandler
	GateMiddleware *middleware.GateMiddleware
	Metrics        *metrics.Metrics
}

type router struct {
	authHandler    *handler.AuthHandler
	accessHandler  *handler.AccessHandler
	gateMiddleware *middleware.GateMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accessHandler:  params.AccessHandler,
		gateMiddleware: params.GateMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics.Enabled() {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/session", r.authHandler.GetSession)
		authGroup.PUT("/session", r.authHandler.SetSession)
		authGroup.DELETE("/session", r.authHandler.ClearSession)
		authGroup.POST("/initialize", r.authHandler.Initialize)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	e.GET("/access", r.accessHandler.Evaluate)
	e.GET("/access/watch", r.accessHandler.Watch)

	// Protected console pages; every request runs the route gate first.
	appGroup := e.Group(middleware.AppPathPrefix)
	appGroup.Use(r.gateMiddleware.Protect)
	{
		appGroup.GET("", r.accessHandler.Protected)
		appGroup.GET("/*", r.accessHandler.Protected)
	}
}
