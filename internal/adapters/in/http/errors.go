package http

import (
	"errors"
	"fmt"
	"net/http"

	"dronefleet/internal/core/domain/model/drone"
	"dronefleet/internal/core/domain/model/medication"
	"dronefleet/internal/generated/servers"
	"dronefleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, drone.ErrDuplicateSerialNumber),
		errors.Is(err, medication.ErrDuplicateCode):
		return http.StatusConflict
	case errors.Is(err, drone.ErrBatteryLow),
		errors.Is(err, drone.ErrOverload),
		errors.Is(err, medication.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) errorResponse(ctx echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(status, servers.Error{
			Code:    status,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// HTTPErrorHandler renders echo errors, such as a malformed path parameter or
// an unknown route, in the same body shape as use case errors.
func (s *Server) HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		s.logger.ErrorContext(ctx.Request().Context(), "Unhandled error", "error", err)
	}

	if writeErr := ctx.JSON(status, servers.Error{Code: status, Message: message}); writeErr != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
	}
}
