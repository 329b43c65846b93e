package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nps-campus/gatepass-api/internal/config"
	"github.com/nps-campus/gatepass-api/internal/handler"
	"github.com/nps-campus/gatepass-api/internal/middleware"
	"github.com/nps-campus/gatepass-api/internal/models"
	"github.com/nps-campus/gatepass-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	RequestHandler    *handler.RequestHandler
	FacultyHandler    *handler.FacultyHandler
	AdminHandler      *handler.AdminHandler
	OutgoingHandler   *handler.OutgoingHandler
	AttendanceHandler *handler.AttendanceHandler
	JWTMiddleware     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	api.Get("/metrics", observability.MetricsHandler())

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.RequestHandler != nil {
		requests := api.Group("/requests", jwtMiddleware, middleware.RequireRole(models.RoleStudent, models.RoleAdmin))
		deps.RequestHandler.Register(requests)
	}

	if deps.FacultyHandler != nil {
		faculty := api.Group("/faculty", jwtMiddleware, middleware.RequireRole(models.RoleFaculty))
		deps.FacultyHandler.Register(faculty)
	}

	if deps.AdminHandler != nil {
		admin := api.Group("/admin", jwtMiddleware, middleware.RequireRole(models.RoleAdmin))
		deps.AdminHandler.Register(admin)
	}

	if deps.OutgoingHandler != nil {
		outgoings := api.Group("/outgoings", jwtMiddleware, middleware.RequireRole(models.RoleSecurity, models.RoleAdmin))
		deps.OutgoingHandler.Register(outgoings)
	}

	if deps.AttendanceHandler != nil {
		attendance := api.Group("/attendance", jwtMiddleware)
		deps.AttendanceHandler.Register(attendance)
	}
}
