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

// AuthHandler serves the four login endpoints.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler builds an auth handler instance.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches the routes to the provided router group.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/student", h.loginStudent)
	router.Post("/faculty", h.loginStaff(models.RoleFaculty))
	router.Post("/admin", h.loginStaff(models.RoleAdmin))
	router.Post("/security", h.loginStaff(models.RoleSecurity))
}

func (h *AuthHandler) loginStudent(c *fiber.Ctx) error {
	var payload dto.StudentLoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	login, err := h.service.LoginStudent(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "login successful", login)
}

func (h *AuthHandler) loginStaff(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload dto.StaffLoginRequest
		if err := c.BodyParser(&payload); err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
		}

		login, err := h.service.LoginStaff(c.Context(), payload, role)
		if err != nil {
			return h.handleError(c, err)
		}

		return utils.SendSuccess(c, "login successful", login)
	}
}

func (h *AuthHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return utils.SendError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
