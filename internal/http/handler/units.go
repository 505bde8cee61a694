package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"archiveapi/internal/service"
)

// RenumberScheduler hands a unit renumbering to the background worker.
type RenumberScheduler interface {
	ScheduleRenumber(ctx context.Context, unitID int64) error
}

// ListUnits returns every unit.
//
// @Summary List units
// @Tags units
// @Produce json
// @Success 200 {array} model.Unit
// @Router /units [get]
func ListUnits(units service.UnitService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := units.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": res})
	}
}

// RenumberUnit schedules a renumbering of the unit's active records.
//
// @Summary Renumber a unit's file numbers
// @Tags units
// @Param id path int true "Unit ID"
// @Success 202 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Router /units/{id}/renumber [post]
func RenumberUnit(units service.UnitService, sched RenumberScheduler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil || id <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_UNIT_ID", "invalid unit id")
		}
		if _, err := units.Get(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		if err := sched.ScheduleRenumber(c.UserContext(), id); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "QUEUE_UNAVAILABLE", "renumber job could not be scheduled")
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"unit_id": id, "status": "scheduled"})
	}
}
