package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/models"
	"github.com/nps-campus/gatepass-api/internal/service"
	"github.com/nps-campus/gatepass-api/internal/utils"
)

// RequestHandler serves the student-facing leave request endpoints.
type RequestHandler struct {
	service service.ApprovalService
	logger  zerolog.Logger
}

// NewRequestHandler builds a request handler instance.
func NewRequestHandler(service service.ApprovalService, logger zerolog.Logger) *RequestHandler {
	return &RequestHandler{
		service: service,
		logger:  logger.With().Str("component", "request_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *RequestHandler) Register(router fiber.Router) {
	router.Post("", h.create)
	router.Get("/:rollNo", h.list)
}

func (h *RequestHandler) create(c *fiber.Ctx) error {
	var payload dto.RequestCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	// The token subject is authoritative for who is applying.
	if actor := actorUsername(c); actor != "" && actorRole(c) == models.RoleStudent {
		payload.RollNo = actor
	}

	request, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "leave request submitted", request)
}

func (h *RequestHandler) list(c *fiber.Ctx) error {
	rollNo := c.Params("rollNo")

	if actor := actorUsername(c); actor != "" && actorRole(c) == models.RoleStudent && actor != rollNo {
		return utils.SendError(c, fiber.StatusForbidden, "cannot view another student's requests")
	}

	requests, err := h.service.ListForStudent(c.Context(), rollNo)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "requests retrieved", requests)
}

func (h *RequestHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "student not found")
	case errors.Is(err, service.ErrInvalidExitTime):
		return utils.SendError(c, fiber.StatusBadRequest, "exit time must be on the daily slot grid")
	case errors.Is(err, service.ErrInvalidRecipient):
		return utils.SendError(c, fiber.StatusBadRequest, "recipient must be your mentor or HOD")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
