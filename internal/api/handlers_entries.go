package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwell/bloom/internal/models"
)

func (handler *Handler) GetEntries(c *fiber.Ctx) error {
	entries, err := handler.store.LoadEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	var payload entryPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry := models.Entry{
		Title:      payload.Title,
		Mood:       payload.Mood,
		Note:       payload.Note,
		Transcript: payload.Transcript,
	}
	if payload.Date != "" {
		date, err := parseDayParam(payload.Date, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		entry.Date = date
	}

	entries, err := handler.store.AppendEntry(entry)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entries)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	entries, err := handler.store.RemoveEntry(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.JSON(entries)
}

func (handler *Handler) ClearEntries(c *fiber.Ctx) error {
	if err := handler.store.ClearEntries(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear entries")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
