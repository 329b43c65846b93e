package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nps-campus/gatepass-api/internal/service"
	"github.com/nps-campus/gatepass-api/internal/utils"
)

// OutgoingHandler serves the security checkpoint: list the ledger and
// consume entries as students exit. It carries no state of its own.
type OutgoingHandler struct {
	service service.OutgoingService
	logger  zerolog.Logger
}

// NewOutgoingHandler builds an outgoing handler instance.
func NewOutgoingHandler(service service.OutgoingService, logger zerolog.Logger) *OutgoingHandler {
	return &OutgoingHandler{
		service: service,
		logger:  logger.With().Str("component", "outgoing_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *OutgoingHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Delete("/:id", h.consume)
}

func (h *OutgoingHandler) list(c *fiber.Ctx) error {
	records, err := h.service.List(c.Context(), c.Query("roll_no"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "outgoing records retrieved", records)
}

func (h *OutgoingHandler) consume(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Consume(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "outgoing record consumed", nil)
}

func (h *OutgoingHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrOutgoingNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "outgoing record not found")
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
