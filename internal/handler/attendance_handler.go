package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/service"
	"github.com/nps-campus/gatepass-api/internal/utils"
)

// AttendanceHandler serves advisory attendance lookups. A failed lookup
// degrades to an available=false payload; it is never a hard failure.
type AttendanceHandler struct {
	service service.AttendanceService
	logger  zerolog.Logger
}

// NewAttendanceHandler builds an attendance handler instance.
func NewAttendanceHandler(service service.AttendanceService, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("/:rollNo", h.get)
}

func (h *AttendanceHandler) get(c *fiber.Ctx) error {
	rollNo := c.Params("rollNo")

	attendance, err := h.service.Get(c.Context(), rollNo)
	if err != nil {
		if errors.Is(err, service.ErrAttendanceUnavailable) {
			return utils.SendSuccess(c, "attendance unavailable", dto.AttendanceResponse{RollNo: rollNo})
		}
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "attendance retrieved", attendance)
}
