// Package http exposes the drone fleet over a REST API built on echo.
//
// @title       Drone Fleet API
// @version     1.0
// @description Register drones, load them with medications and track their state.
// @BasePath    /api/v1
package http

import (
	"context"
	"log/slog"
	"net/http"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/medication"
	"dronefleet/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

type (
	RegisterDroneHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterDroneCommand) (*drone.Drone, error)
	}

	LoadDroneHandler interface {
		Handle(ctx context.Context, cmd commands.LoadDroneCommand) (*medication.Medication, error)
	}

	GetDroneHandler interface {
		Handle(ctx context.Context, query queries.GetDroneQuery) (queries.GetDroneQueryResponse, error)
	}

	GetDroneAvailabilityHandler interface {
		Handle(ctx context.Context, query queries.GetDroneAvailabilityQuery) (bool, error)
	}

	GetDroneBatteryHandler interface {
		Handle(ctx context.Context, query queries.GetDroneBatteryQuery) (int, error)
	}

	GetLoadedMedicationsHandler interface {
		Handle(
			ctx context.Context,
			query queries.GetLoadedMedicationsQuery,
		) ([]queries.GetLoadedMedicationsQueryResponse, error)
	}

	// Pinger reports whether the backing store is reachable.
	Pinger interface {
		PingContext(ctx context.Context) error
	}
)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	registerDroneHandler RegisterDroneHandler
	loadDroneHandler     LoadDroneHandler

	// Query handlers
	getDroneHandler             GetDroneHandler
	getDroneAvailabilityHandler GetDroneAvailabilityHandler
	getDroneBatteryHandler      GetDroneBatteryHandler
	getLoadedMedicationsHandler GetLoadedMedicationsHandler

	pinger Pinger
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(
	registerDroneHandler RegisterDroneHandler,
	loadDroneHandler LoadDroneHandler,
	getDroneHandler GetDroneHandler,
	getDroneAvailabilityHandler GetDroneAvailabilityHandler,
	getDroneBatteryHandler GetDroneBatteryHandler,
	getLoadedMedicationsHandler GetLoadedMedicationsHandler,
	pinger Pinger,
	logger *slog.Logger,
) *Server {
	return &Server{
		registerDroneHandler:        registerDroneHandler,
		loadDroneHandler:            loadDroneHandler,
		getDroneHandler:             getDroneHandler,
		getDroneAvailabilityHandler: getDroneAvailabilityHandler,
		getDroneBatteryHandler:      getDroneBatteryHandler,
		getLoadedMedicationsHandler: getLoadedMedicationsHandler,
		pinger:                      pinger,
		logger:                      logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	if s.pinger != nil {
		if err := s.pinger.PingContext(ctx.Request().Context()); err != nil {
			s.logger.ErrorContext(ctx.Request().Context(), "Health check failed", "error", err)
			return ctx.String(http.StatusServiceUnavailable, "Unhealthy")
		}
	}
	return ctx.String(http.StatusOK, "Healthy")
}
