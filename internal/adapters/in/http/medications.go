package http

import (
	"net/http"

	"dronefleet/internal/core/application/usecases/commands"
	"dronefleet/internal/core/application/usecases/queries"
	"dronefleet/internal/core/domain/model/kernel"
	"dronefleet/internal/core/domain/model/medication"
	"dronefleet/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// LoadDrone handles POST /api/v1/drones/{droneId}/medications.
//
// @Summary  Load a medication onto a drone
// @Tags     medications
// @Accept   json
// @Produce  json
// @Param    droneId    path     string                true "Drone ID" format(uuid)
// @Param    medication body     servers.NewMedication true "Medication to load"
// @Success  201        {object} servers.Medication
// @Failure  400        {object} servers.Error
// @Failure  404        {object} servers.Error
// @Failure  409        {object} servers.Error
// @Router   /drones/{droneId}/medications [post]
func (s *Server) LoadDrone(ctx echo.Context, droneId servers.DroneId) error {
	var body servers.LoadDroneJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(droneId[:])
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewLoadDroneCommand(id, body.Name, body.Code, kernel.Weight(body.Weight), imageFromRequest(body.Image))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	loaded, err := s.loadDroneHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Medication{
		Id:     loaded.ID().Bytes(),
		Name:   loaded.Name(),
		Code:   loaded.Code(),
		Weight: loaded.Weight().Float64(),
		Image:  imageToResponse(loaded.Image().Name, loaded.Image().Type, loaded.Image().Data),
	})
}

// GetLoadedMedications handles GET /api/v1/drones/{droneId}/medications.
//
// @Summary  List medications loaded on a drone
// @Tags     medications
// @Produce  json
// @Param    droneId path     string true "Drone ID" format(uuid)
// @Success  200     {array}  servers.Medication
// @Failure  404     {object} servers.Error
// @Router   /drones/{droneId}/medications [get]
func (s *Server) GetLoadedMedications(ctx echo.Context, droneId servers.DroneId) error {
	id, err := kernel.UUIDFromBytes(droneId[:])
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetLoadedMedicationsQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	medications, err := s.getLoadedMedicationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]servers.Medication, len(medications))
	for i, m := range medications {
		response[i] = servers.Medication{
			Id:     m.ID.Bytes(),
			Name:   m.Name,
			Code:   m.Code,
			Weight: m.Weight.Float64(),
			Image:  imageToResponse(m.ImageName, m.ImageType, m.ImageData),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func imageFromRequest(image *servers.MedicationImage) medication.Image {
	if image == nil {
		return medication.Image{}
	}

	var result medication.Image
	if image.Name != nil {
		result.Name = *image.Name
	}
	if image.Type != nil {
		result.Type = *image.Type
	}
	if image.Data != nil {
		result.Data = *image.Data
	}
	return result
}

func imageToResponse(name, contentType string, data []byte) *servers.MedicationImage {
	if name == "" && contentType == "" && len(data) == 0 {
		return nil
	}

	image := &servers.MedicationImage{}
	if name != "" {
		image.Name = &name
	}
	if contentType != "" {
		image.Type = &contentType
	}
	if len(data) > 0 {
		image.Data = &data
	}
	return image
}
