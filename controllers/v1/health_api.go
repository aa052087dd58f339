package apiv1

import (
	dbhealthworker "ats-backend/lib/db-health"

	"github.com/gofiber/fiber/v2"
)

func InitHealthRouters(app fiber.Router) {
	app.Get("health", health)
}

// @Summary Health
// @Tags Health
// @Description Result of the last database check
// @Success 200 {object} dbhealthworker.Status
// @Failure 503 {object} dbhealthworker.Status
// @router /api/v1/health [get]
func health(ctx *fiber.Ctx) error {
	status := dbhealthworker.Current()
	if !status.Healthy {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	return ctx.Status(fiber.StatusOK).JSON(status)
}
