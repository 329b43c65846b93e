package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/service"
	"github.com/nps-campus/gatepass-api/internal/utils"
)

// FacultyHandler serves the faculty approver endpoints.
type FacultyHandler struct {
	service service.ApprovalService
	logger  zerolog.Logger
}

// NewFacultyHandler builds a faculty handler instance.
func NewFacultyHandler(service service.ApprovalService, logger zerolog.Logger) *FacultyHandler {
	return &FacultyHandler{
		service: service,
		logger:  logger.With().Str("component", "faculty_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *FacultyHandler) Register(router fiber.Router) {
	router.Get("/requests/:username", h.listPending)
	router.Post("/request-action", h.act)
}

func (h *FacultyHandler) listPending(c *fiber.Ctx) error {
	username := c.Params("username")

	if actor := actorUsername(c); actor != "" && actor != username {
		return utils.SendError(c, fiber.StatusForbidden, "cannot view another approver's queue")
	}

	requests, err := h.service.ListPendingForFaculty(c.Context(), username)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "pending requests retrieved", requests)
}

func (h *FacultyHandler) act(c *fiber.Ctx) error {
	var payload dto.ActionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	actor := actorUsername(c)
	if actor == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "approver identity missing")
	}

	request, err := h.service.FacultyAct(c.Context(), payload, actor)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "decision recorded", request)
}

func (h *FacultyHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "request not found")
	case errors.Is(err, service.ErrNotRecipient):
		return utils.SendError(c, fiber.StatusForbidden, "request is addressed to another approver")
	case errors.Is(err, service.ErrAlreadyDecided):
		return utils.SendError(c, fiber.StatusConflict, "request was already acted on")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
