package http

import (
	"log/slog"
	"net/http"

	"storefront/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance with middleware, API routes,
// /metrics and the OpenAPI document.
func NewRouter(server *Server, metrics *Metrics, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	// Metrics sits outside Recover so a panicking handler is still counted as a 500.
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(log))
	e.Use(metrics.Middleware())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server.Register(e)

	e.GET("/metrics", metrics.Handler())
	e.GET("/api/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Document())
	})

	return e
}
