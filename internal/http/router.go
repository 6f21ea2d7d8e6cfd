// Package http wires the handlers into an Echo server.
package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "coderev/docs"
	"coderev/internal/handler"
)

// NewRouter builds the HTTP routing tree.
func NewRouter(reviewHandler *handler.ReviewHandler, swaggerEnabled bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	api := e.Group("/api")
	reviewHandler.RegisterRoutes(api)
	api.GET("/health", health)

	if swaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
