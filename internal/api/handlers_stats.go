package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwell/bloom/internal/analytics"
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	entries, err := handler.store.LoadEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	sleepEntries, err := handler.store.LoadSleepEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch sleep log")
	}

	now := handler.now()
	return c.JSON(fiber.Map{
		"total_entries":     len(entries),
		"mood_distribution": analytics.MoodDistribution(entries),
		"average_mood":      analytics.AverageMoodScore(entries),
		"positive_share":    analytics.PositiveShare(entries),
		"streaks":           analytics.Streaks(analytics.EntryDates(entries), handler.location),
		"entries_this_week": len(analytics.EntriesWithinDays(entries, 7, now, handler.location)),
		"sleep_week":        analytics.SummarizeSleep(sleepEntries, 7, now, handler.location),
	})
}

func (handler *Handler) GetStatsProgress(c *fiber.Ctx) error {
	entries, err := handler.store.LoadEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch entries")
	}
	settings, err := handler.store.LoadSettings()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch settings")
	}

	now := handler.now()
	return c.JSON(fiber.Map{
		"goal":       analytics.MonthlyGoalProgress(entries, settings.MonthlyEntryGoal, now, handler.location),
		"mood_trend": analytics.MonthOverMonthMoodTrend(entries, now, handler.location),
	})
}
