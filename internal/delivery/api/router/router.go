// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pizarra/config"
	"pizarra/internal/delivery/api/router/handler"
	"pizarra/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	PageHandler    *handler.PageHandler
	Metrics        *metrics.Recorder `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	pageHandler    *handler.PageHandler
	metrics        *metrics.Recorder
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		pageHandler:    params.PageHandler,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.pageHandler.Index)
	e.GET("/login", r.pageHandler.Login)

	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/register", r.accountHandler.Register)
		apiGroup.POST("/login", r.accountHandler.Login)
	}
}
