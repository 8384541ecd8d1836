package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bloomwell/bloom/internal/analytics"
)

func (handler *Handler) Chat(c *fiber.Ctx) error {
	var payload chatPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(payload.Message) == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	reply, err := handler.insights.Chat(c.Context(), payload.History, payload.Message)
	if err != nil {
		return apiError(c, fiber.StatusBadGateway, "assistant is unavailable")
	}
	return c.JSON(fiber.Map{"reply": reply})
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	entries, err := handler.store.LoadEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}

	distribution := analytics.MoodDistribution(entries)
	summary := handler.insights.SummarizeEntries(c.Context(), entries, distribution)
	return c.JSON(fiber.Map{
		"summary":      summary,
		"distribution": distribution,
		"generated":    handler.insights.Enabled(),
	})
}
