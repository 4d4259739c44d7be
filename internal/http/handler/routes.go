package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/engr401-groot-ai/notification-system-server/internal/service"
	"github.com/engr401-groot-ai/notification-system-server/internal/web"
)

// ReadinessCheck probes a backend dependency. A nil check means "always ready".
type ReadinessCheck func(ctx context.Context) error

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal: parsing, status mapping, and delegation to services.
func RegisterRoutes(app *fiber.App, ready ReadinessCheck, mentions service.MentionService, settings service.SettingsService) {
	app.Get("/", IndexPage())

	app.Get("/health", HealthCheck(ready))
	app.Get("/healthz", LivenessProbe())

	app.Get("/api/mentions/recent", RecentMentions(mentions))
	app.Get("/api/notification-settings", GetNotificationSettings(settings))
	app.Post("/api/notification-settings", UpdateNotificationSettings(settings))
}

// IndexPage serves the embedded dashboard page.
func IndexPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("html")
		return c.Send(web.IndexHTML)
	}
}

// HealthCheck reports readiness by probing a backend dependency.
func HealthCheck(ready ReadinessCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ready != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := ready(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RecentMentions returns mentions created in the last X hours.
//
// @Summary List recent mentions
// @Param hours query int false "How many hours back to fetch" minimum(1) default(24)
// @Success 200 {object} service.MentionFeed
// @Router /api/mentions/recent [get]
func RecentMentions(svc service.MentionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hoursStr := c.Query("hours", strconv.Itoa(service.DefaultLookbackHours))
		hours, err := strconv.Atoi(hoursStr)
		if err != nil || hours < 1 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_HOURS", "hours must be an integer >= 1")
		}

		feed, err := svc.Recent(c.UserContext(), hours)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(feed)
	}
}

// GetNotificationSettings fetches current settings.
// The response uses the dashboard's ok-envelope: recipients come back as a
// CSV string for the text input, and a missing document reads as empty settings.
//
// @Summary Get notification settings
// @Success 200 {object} map[string]interface{}
// @Router /api/notification-settings [get]
func GetNotificationSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.Get(c.UserContext())
		if err != nil {
			return c.JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		return c.JSON(fiber.Map{"ok": true, "settings": view})
	}
}

// UpdateNotificationSettings updates sender, password and recipients.
// Validation failures come back in the same ok-envelope with the user-facing
// message; nothing is persisted in that case.
//
// @Summary Update notification settings
// @Accept json
// @Success 200 {object} map[string]interface{}
// @Router /api/notification-settings [post]
func UpdateNotificationSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.UpdateSettingsRequest
		if err := c.BodyParser(&req); err != nil {
			return c.JSON(fiber.Map{"ok": false, "error": err.Error()})
		}

		if err := svc.Update(c.UserContext(), req); err != nil {
			var ve *service.ValidationError
			if errors.As(err, &ve) {
				return c.JSON(fiber.Map{"ok": false, "error": ve.Message})
			}
			return c.JSON(fiber.Map{"ok": false, "error": err.Error()})
		}

		return c.JSON(fiber.Map{"ok": true, "message": "Settings updated successfully"})
	}
}
