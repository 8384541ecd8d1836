package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	entries := api.Group("/entries")
	entries.Get("", handler.GetEntries)
	entries.Post("", handler.CreateEntry)
	entries.Delete("", handler.ClearEntries)
	entries.Delete("/:id", handler.DeleteEntry)

	sleep := api.Group("/sleep")
	sleep.Get("", handler.GetSleepEntries)
	sleep.Post("", handler.CreateSleepEntry)
	sleep.Delete("", handler.ClearSleepEntries)
	sleep.Delete("/:id", handler.DeleteSleepEntry)

	resources := api.Group("/resources")
	resources.Get("", handler.GetResources)
	resources.Post("", handler.CreateResource)
	resources.Get("/categories", handler.GetResourceCategories)
	resources.Get("/:id/recommendations", handler.GetRecommendations)
	resources.Delete("/:id", handler.DeleteResource)

	stats := api.Group("/stats")
	stats.Get("/overview", handler.GetStatsOverview)
	stats.Get("/progress", handler.GetStatsProgress)

	api.Get("/calendar/:year/:month", handler.GetCalendarMonth)

	settings := api.Group("/settings")
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)

	api.Post("/chat", handler.Chat)
	api.Get("/insights", handler.GetInsights)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
