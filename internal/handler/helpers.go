package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	value := c.Params(key)
	if value == "" {
		return 0, errors.New("missing " + key)
	}

	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}

	return uint(parsed), nil
}

// actorUsername returns the authenticated subject bound by the JWT
// middleware, or "" for unauthenticated test setups.
func actorUsername(c *fiber.Ctx) string {
	if value, ok := c.Locals("username").(string); ok {
		return value
	}
	return ""
}

func actorRole(c *fiber.Ctx) string {
	if value, ok := c.Locals("user_role").(string); ok {
		return value
	}
	return ""
}
