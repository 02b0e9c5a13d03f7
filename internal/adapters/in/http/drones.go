package http

import (
	"errors"
	"net/http"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterDrone handles POST /api/v1/drones.
//
// @Summary  Register a drone
// @Tags     drones
// @Accept   json
// @Produce  json
// @Param    drone body     servers.NewDrone true "Drone to register"
// @Success  201   {object} servers.Drone
// @Failure  400   {object} servers.Error
// @Failure  409   {object} servers.Error
// @Router   /drones [post]
func (s *Server) RegisterDrone(ctx echo.Context) error {
	var body servers.RegisterDroneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	model, modelErr := drone.ParseModel(string(body.Model))
	state, stateErr := drone.ParseState(string(body.State))
	if err := errors.Join(modelErr, stateErr); err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewRegisterDroneCommand(body.SerialNumber, model, body.BatteryCapacity, state)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	registered, err := s.registerDroneHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Drone{
		Id:              registered.ID().Bytes(),
		SerialNumber:    registered.SerialNumber(),
		Model:           servers.DroneModel(registered.Model().String()),
		WeightLimit:     registered.WeightLimit().Float64(),
		BatteryCapacity: registered.BatteryCapacity(),
		State:           servers.DroneState(registered.State().String()),
	})
}

// GetDrone handles GET /api/v1/drones/{droneId}.
//
// @Summary  Get a drone
// @Tags     drones
// @Produce  json
// @Param    droneId path     string true "Drone ID" format(uuid)
// @Success  200     {object} servers.Drone
// @Failure  404     {object} servers.Error
// @Router   /drones/{droneId} [get]
func (s *Server) GetDrone(ctx echo.Context, droneId servers.DroneId) error {
	id, err := kernel.UUIDFromBytes(droneId[:])
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetDroneQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	d, err := s.getDroneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Drone{
		Id:              d.ID.Bytes(),
		SerialNumber:    d.SerialNumber,
		Model:           servers.DroneModel(d.Model),
		WeightLimit:     d.WeightLimit.Float64(),
		BatteryCapacity: d.BatteryCapacity,
		State:           servers.DroneState(d.State),
	})
}

// GetDroneAvailability handles GET /api/v1/drones/{droneId}/availability.
//
// @Summary  Check whether a drone can be loaded
// @Tags     drones
// @Produce  json
// @Param    droneId path     string true "Drone ID" format(uuid)
// @Success  200     {boolean} bool
// @Failure  404     {object} servers.Error
// @Router   /drones/{droneId}/availability [get]
func (s *Server) GetDroneAvailability(ctx echo.Context, droneId servers.DroneId) error {
	id, err := kernel.UUIDFromBytes(droneId[:])
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetDroneAvailabilityQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	available, err := s.getDroneAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, available)
}

// GetDroneBattery handles GET /api/v1/drones/{droneId}/battery.
//
// @Summary  Get the battery level of a drone
// @Tags     drones
// @Produce  json
// @Param    droneId path     string true "Drone ID" format(uuid)
// @Success  200     {integer} int
// @Failure  404     {object} servers.Error
// @Router   /drones/{droneId}/battery [get]
func (s *Server) GetDroneBattery(ctx echo.Context, droneId servers.DroneId) error {
	id, err := kernel.UUIDFromBytes(droneId[:])
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetDroneBatteryQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	battery, err := s.getDroneBatteryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, battery)
}
