package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bloomwell/bloom/internal/analytics"
)

func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	entries, err := handler.store.LoadEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	days := analytics.MonthDays(entries, year, time.Month(month), handler.now(), handler.location)
	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  days,
	})
}
