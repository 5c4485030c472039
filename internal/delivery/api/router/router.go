// Package router contains routing for the HTTP API.
package router

import (
	"net/http"

	"lightmap/config"
	"lightmap/internal/delivery/api/middleware"
	"lightmap/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers registered on the API, injected by Fx.
type RouterParams struct {
	fx.In

	MarkerHandler  *handler.MarkerHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config

	// MetricsHandler serves the Prometheus registry; nil disables /metrics.
	MetricsHandler http.Handler `name:"metrics" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	markerHandler  *handler.MarkerHandler
	authMiddleware *middleware.AuthMiddleware
	metricsHandler http.Handler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		markerHandler:  params.MarkerHandler,
		authMiddleware: params.AuthMiddleware,
		metricsHandler: params.MetricsHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil {
		path := "/metrics"
		if r.config.Metrics != nil && r.config.Metrics.Path != "" {
			path = r.config.Metrics.Path
		}
		e.GET(path, echo.WrapHandler(r.metricsHandler))
	}

	apiV1 := e.Group("/api/v1")

	markersGroup := apiV1.Group("/markers")
	{
		// Reads and submissions are open; a valid token attributes the observation.
		markersGroup.POST("", r.markerHandler.SubmitObservation, r.authMiddleware.OptionalAuthenticate)
		markersGroup.GET("", r.markerHandler.ListMarkers)
		markersGroup.GET("/kml", r.markerHandler.ExportKML)
		markersGroup.GET("/geojson", r.markerHandler.ExportGeoJSON)
		markersGroup.GET("/:id", r.markerHandler.GetMarker)

		markersGroup.POST("/:id/toggle", r.markerHandler.ToggleMarker, r.authMiddleware.Authenticate)
		markersGroup.POST("/:id/confirm", r.markerHandler.ConfirmMarker, r.authMiddleware.Authenticate)
		markersGroup.DELETE("/:id", r.markerHandler.DeleteMarker, r.authMiddleware.Authenticate)
	}
}
