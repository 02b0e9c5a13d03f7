package http

import (
	"net/http"

	_ "dronefleet/internal/generated/docs"
	"dronefleet/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.4 init --generalInfo server.go --dir .,../../../generated/servers --output ../../../generated/docs --outputTypes go

// NewRouter builds the echo instance with the API, the health probe, the
// OpenAPI document and the swagger UI.
func NewRouter(server *Server, spec *openapi3.T) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = server.HTTPErrorHandler
	e.Use(middleware.Recover())

	e.GET("/health", server.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(BaseURL)
	if spec != nil {
		api.GET("/openapi.json", func(ctx echo.Context) error {
			return ctx.JSON(http.StatusOK, spec)
		})
	}
	servers.RegisterHandlersWithBaseURL(api, server, "")

	return e
}
