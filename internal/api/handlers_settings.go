package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwell/bloom/internal/models"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.store.LoadSettings()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch settings")
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	var payload models.Settings
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	saved, err := handler.store.SaveSettings(payload)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return c.JSON(saved)
}
