package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bloomwell/bloom/internal/models"
	"github.com/bloomwell/bloom/internal/store"
)

func (handler *Handler) GetSleepEntries(c *fiber.Ctx) error {
	entries, err := handler.store.LoadSleepEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch sleep log")
	}
	return c.JSON(entries)
}

func (handler *Handler) CreateSleepEntry(c *fiber.Ctx) error {
	var payload sleepPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry := models.SleepEntry{
		Hours:   payload.Hours,
		Quality: payload.Quality,
	}
	if payload.Date != "" {
		date, err := parseDayParam(payload.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		entry.Date = date
	}

	entries, err := handler.store.AppendSleepEntry(entry)
	if err != nil {
		if errors.Is(err, store.ErrSleepHoursOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, "hours must be between 0 and 24")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save sleep entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entries)
}

func (handler *Handler) DeleteSleepEntry(c *fiber.Ctx) error {
	entries, err := handler.store.RemoveSleepEntry(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete sleep entry")
	}
	return c.JSON(entries)
}

func (handler *Handler) ClearSleepEntries(c *fiber.Ctx) error {
	if err := handler.store.ClearSleepEntries(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear sleep log")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
