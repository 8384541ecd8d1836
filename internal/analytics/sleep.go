package analytics

import (
	"math"
	"time"

	"github.com/bloomwell/bloom/internal/models"
)

type SleepSummary struct {
	AverageHours  float64        `json:"average_hours"`
	Nights        int            `json:"nights"`
	QualityCounts map[string]int `json:"quality_counts"`
}

// SummarizeSleep reduces the trailing window of nights ending today to
// an average and per-quality counts. An empty window yields a zeroed
// summary.
func SummarizeSleep(entries []models.SleepEntry, days int, now time.Time, location *time.Location) SleepSummary {
	today := DateAtLocation(now, location)
	start := today.AddDate(0, 0, -(days - 1))

	summary := SleepSummary{QualityCounts: make(map[string]int)}
	var totalHours float64
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		if day.Before(start) || day.After(today) {
			continue
		}
		summary.Nights++
		totalHours += entry.Hours
		summary.QualityCounts[models.NormalizeSleepQuality(entry.Quality)]++
	}

	if summary.Nights > 0 {
		summary.AverageHours = math.Round(totalHours/float64(summary.Nights)*10) / 10
	}
	return summary
}

// SleepDates projects sleep entries onto their dates for streak
// computation.
func SleepDates(entries []models.SleepEntry) []time.Time {
	dates := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		dates = append(dates, entry.Date)
	}
	return dates
}

// EntryDates projects journal entries onto their dates for streak
// computation.
func EntryDates(entries []models.Entry) []time.Time {
	dates := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		dates = append(dates, entry.Date)
	}
	return dates
}
