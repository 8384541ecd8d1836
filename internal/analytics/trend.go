package analytics

import (
	"math"
	"time"

	"github.com/bloomwell/bloom/internal/models"
)

// TrendDelta compares two equal-length observation windows and returns
// the percentage change of their averages, rounded to one decimal. An
// empty previous window defines the trend as 0 rather than failing on
// division by zero.
func TrendDelta(current []float64, previous []float64) float64 {
	if len(previous) == 0 {
		return 0
	}
	previousAverage := averageFloats(previous)
	if previousAverage == 0 {
		return 0
	}
	currentAverage := averageFloats(current)
	delta := (currentAverage - previousAverage) / previousAverage * 100
	return math.Round(delta*10) / 10
}

// MonthOverMonthMoodTrend compares the mood scores of the current
// calendar month against the immediately preceding one.
func MonthOverMonthMoodTrend(entries []models.Entry, now time.Time, location *time.Location) float64 {
	today := DateAtLocation(now, location)
	currentStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	previousStart := currentStart.AddDate(0, -1, 0)

	current := make([]float64, 0)
	previous := make([]float64, 0)
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		switch {
		case !day.Before(currentStart):
			current = append(current, MoodScore(entry.Mood))
		case !day.Before(previousStart):
			previous = append(previous, MoodScore(entry.Mood))
		}
	}
	return TrendDelta(current, previous)
}

type GoalProgress struct {
	Goal    int `json:"goal"`
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

// MonthlyGoalProgress counts entries dated within the current calendar
// month and year, by local calendar rather than a rolling 30 days, and
// expresses the count against the configured goal. The display percent
// caps at 100 even when the raw count exceeds the goal.
func MonthlyGoalProgress(entries []models.Entry, goal int, now time.Time, location *time.Location) GoalProgress {
	goal = models.ClampMonthlyEntryGoal(goal)
	today := DateAtLocation(now, location)

	count := 0
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		if day.Year() == today.Year() && day.Month() == today.Month() {
			count++
		}
	}

	percent := int(math.Round(float64(count) / float64(goal) * 100))
	if percent > 100 {
		percent = 100
	}
	return GoalProgress{Goal: goal, Count: count, Percent: percent}
}

// EntriesWithinDays returns the entries dated within the trailing
// window ending today, inclusive of both bounds.
func EntriesWithinDays(entries []models.Entry, days int, now time.Time, location *time.Location) []models.Entry {
	today := DateAtLocation(now, location)
	start := today.AddDate(0, 0, -(days - 1))

	recent := make([]models.Entry, 0, len(entries))
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		if !day.Before(start) && !day.After(today) {
			recent = append(recent, entry)
		}
	}
	return recent
}

func averageFloats(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}
