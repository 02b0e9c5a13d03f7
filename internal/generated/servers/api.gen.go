// Package servers holds the models and echo server binding of openapi.yml.
//
// The layout follows oapi-codegen's echo output; `go generate` rewrites this
// file from openapi.yml using oapi-codegen.yaml.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for DroneModel.
const (
	CRUISERWEIGHT DroneModel = "CRUISERWEIGHT"
	HEAVYWEIGHT   DroneModel = "HEAVYWEIGHT"
	LIGHTWEIGHT   DroneModel = "LIGHTWEIGHT"
	MIDDLEWEIGHT  DroneModel = "MIDDLEWEIGHT"
)

// Defines values for DroneState.
const (
	DELIVERED  DroneState = "DELIVERED"
	DELIVERING DroneState = "DELIVERING"
	IDLE       DroneState = "IDLE"
	LOADED     DroneState = "LOADED"
	LOADING    DroneState = "LOADING"
	RETURNING  DroneState = "RETURNING"
)

// Drone defines model for Drone.
type Drone struct {
	BatteryCapacity int                `json:"batteryCapacity"`
	Id              openapi_types.UUID `json:"id"`
	Model           DroneModel         `json:"model"`
	SerialNumber    string             `json:"serialNumber"`
	State           DroneState         `json:"state"`
	WeightLimit     float64            `json:"weightLimit"`
}

// DroneModel defines model for DroneModel.
type DroneModel string

// DroneState defines model for DroneState.
type DroneState string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Medication defines model for Medication.
type Medication struct {
	Code   string             `json:"code"`
	Id     openapi_types.UUID `json:"id"`
	Image  *MedicationImage   `json:"image,omitempty"`
	Name   string             `json:"name"`
	Weight float64            `json:"weight"`
}

// MedicationImage defines model for MedicationImage.
type MedicationImage struct {
	Data *[]byte `json:"data,omitempty"`
	Name *string `json:"name,omitempty"`
	Type *string `json:"type,omitempty"`
}

// NewDrone defines model for NewDrone.
type NewDrone struct {
	BatteryCapacity int        `json:"batteryCapacity"`
	Model           DroneModel `json:"model"`
	SerialNumber    string     `json:"serialNumber"`
	State           DroneState `json:"state"`
}

// NewMedication defines model for NewMedication.
type NewMedication struct {
	Code   string           `json:"code"`
	Image  *MedicationImage `json:"image,omitempty"`
	Name   string           `json:"name"`
	Weight float64          `json:"weight"`
}

// DroneId defines model for DroneId.
type DroneId = openapi_types.UUID

// RegisterDroneJSONRequestBody defines body for RegisterDrone for application/json ContentType.
type RegisterDroneJSONRequestBody = NewDrone

// LoadDroneJSONRequestBody defines body for LoadDrone for application/json ContentType.
type LoadDroneJSONRequestBody = NewMedication

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register a drone
	// (POST /drones)
	RegisterDrone(ctx echo.Context) error
	// Get a drone
	// (GET /drones/{droneId})
	GetDrone(ctx echo.Context, droneId DroneId) error
	// Whether the drone is IDLE with at least 25% battery
	// (GET /drones/{droneId}/availability)
	GetDroneAvailability(ctx echo.Context, droneId DroneId) error
	// Battery level of a drone
	// (GET /drones/{droneId}/battery)
	GetDroneBattery(ctx echo.Context, droneId DroneId) error
	// List medications loaded on a drone
	// (GET /drones/{droneId}/medications)
	GetLoadedMedications(ctx echo.Context, droneId DroneId) error
	// Load a medication onto a drone
	// (POST /drones/{droneId}/medications)
	LoadDrone(ctx echo.Context, droneId DroneId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterDrone converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterDrone(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterDrone(ctx)
	return err
}

// GetDrone converts echo context to params.
func (w *ServerInterfaceWrapper) GetDrone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "droneId" -------------
	var droneId DroneId

	err = runtime.BindStyledParameterWithOptions("simple", "droneId", ctx.Param("droneId"), &droneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDrone(ctx, droneId)
	return err
}

// GetDroneAvailability converts echo context to params.
func (w *ServerInterfaceWrapper) GetDroneAvailability(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "droneId" -------------
	var droneId DroneId

	err = runtime.BindStyledParameterWithOptions("simple", "droneId", ctx.Param("droneId"), &droneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDroneAvailability(ctx, droneId)
	return err
}

// GetDroneBattery converts echo context to params.
func (w *ServerInterfaceWrapper) GetDroneBattery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "droneId" -------------
	var droneId DroneId

	err = runtime.BindStyledParameterWithOptions("simple", "droneId", ctx.Param("droneId"), &droneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDroneBattery(ctx, droneId)
	return err
}

// GetLoadedMedications converts echo context to params.
func (w *ServerInterfaceWrapper) GetLoadedMedications(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "droneId" -------------
	var droneId DroneId

	err = runtime.BindStyledParameterWithOptions("simple", "droneId", ctx.Param("droneId"), &droneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetLoadedMedications(ctx, droneId)
	return err
}

// LoadDrone converts echo context to params.
func (w *ServerInterfaceWrapper) LoadDrone(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "droneId" -------------
	var droneId DroneId

	err = runtime.BindStyledParameterWithOptions("simple", "droneId", ctx.Param("droneId"), &droneId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter droneId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.LoadDrone(ctx, droneId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/drones", wrapper.RegisterDrone)
	router.GET(baseURL+"/drones/:droneId", wrapper.GetDrone)
	router.GET(baseURL+"/drones/:droneId/availability", wrapper.GetDroneAvailability)
	router.GET(baseURL+"/drones/:droneId/battery", wrapper.GetDroneBattery)
	router.GET(baseURL+"/drones/:droneId/medications", wrapper.GetLoadedMedications)
	router.POST(baseURL+"/drones/:droneId/medications", wrapper.LoadDrone)

}
