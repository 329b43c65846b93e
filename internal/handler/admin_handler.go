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

// AdminHandler serves the admin office endpoints: the second approval stage
// plus roster housekeeping.
type AdminHandler struct {
	approvals service.ApprovalService
	roster    service.RosterService
	logger    zerolog.Logger
}

// NewAdminHandler builds an admin handler instance.
func NewAdminHandler(approvals service.ApprovalService, roster service.RosterService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		approvals: approvals,
		roster:    roster,
		logger:    logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/requests", h.listPending)
	router.Post("/request-action", h.act)
	router.Post("/faculty", h.registerFaculty)
	router.Delete("/students/graduates", h.removeGraduates)
}

func (h *AdminHandler) listPending(c *fiber.Ctx) error {
	requests, err := h.approvals.ListPendingForAdmin(c.Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "pending requests retrieved", requests)
}

func (h *AdminHandler) act(c *fiber.Ctx) error {
	var payload dto.ActionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	request, err := h.approvals.AdminAct(c.Context(), payload, actorUsername(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "decision recorded", request)
}

func (h *AdminHandler) registerFaculty(c *fiber.Ctx) error {
	var payload dto.FacultyRegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	profile, err := h.roster.RegisterFaculty(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "faculty account registered", profile)
}

func (h *AdminHandler) removeGraduates(c *fiber.Ctx) error {
	year := c.Query("year")

	count, err := h.roster.RemoveGraduates(c.Context(), year)
	if err != nil {
		if year == "" {
			return utils.SendError(c, fiber.StatusBadRequest, "graduating year is required")
		}
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "graduated students removed", fiber.Map{"count": count})
}

func (h *AdminHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "request not found")
	case errors.Is(err, service.ErrAlreadyDecided):
		return utils.SendError(c, fiber.StatusConflict, "request was already acted on")
	case errors.Is(err, service.ErrUsernameTaken):
		return utils.SendError(c, fiber.StatusConflict, "username already registered")
	case errors.Is(err, service.ErrLedgerInconsistent):
		return utils.SendError(c, fiber.StatusInternalServerError, "approval could not be completed")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
