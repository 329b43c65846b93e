package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nps-campus/gatepass-api/internal/observability"
)

// Observability attaches Prometheus metrics and structured latency/error
// logging for the approval workflow endpoints.
func Observability(logger zerolog.Logger) fiber.Handler {
	observability.RegisterMetrics()

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		if !workflowPath(c.Path()) {
			return err
		}

		route := routeTemplate(c)
		method := c.Method()
		status := c.Response().StatusCode()
		statusLabel := fmt.Sprintf("%d", status)

		observability.WorkflowRequests().WithLabelValues(method, route, statusLabel).Inc()
		observability.WorkflowLatency().WithLabelValues(method, route).Observe(duration.Seconds())
		if status >= fiber.StatusBadRequest {
			observability.WorkflowErrors().WithLabelValues(method, route, statusLabel).Inc()
		}

		requestLogger := logger.With().
			Str("correlation_id", GetCorrelationID(c)).
			Str("route", route).
			Str("method", method).
			Int("status", status).
			Float64("latency_ms", float64(duration)/float64(time.Millisecond)).
			Logger()

		switch {
		case status >= fiber.StatusInternalServerError:
			requestLogger.Error().Msg("workflow request failed")
		case status >= fiber.StatusBadRequest:
			requestLogger.Warn().Msg("workflow request completed with client error")
		default:
			requestLogger.Info().Msg("workflow request completed")
		}

		return err
	}
}

// workflowPath matches the endpoints that mutate or read the approval flow.
func workflowPath(path string) bool {
	for _, prefix := range []string{"/api/v1/requests", "/api/v1/faculty", "/api/v1/admin", "/api/v1/outgoings"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func routeTemplate(c *fiber.Ctx) string {
	if c.Route() != nil && c.Route().Path != "" {
		return c.Route().Path
	}
	return c.Path()
}
