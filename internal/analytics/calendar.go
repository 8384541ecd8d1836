package analytics

import (
	"time"

	"github.com/bloomwell/bloom/internal/models"
)

type CalendarDay struct {
	Date    string         `json:"date"`
	Day     int            `json:"day"`
	IsToday bool           `json:"is_today"`
	Entries []models.Entry `json:"entries"`
}

// MonthDays groups a snapshot by calendar day for one month's grid.
// Every day of the month is present; days without entries carry an
// empty slice. Entries inside a day keep the snapshot's recency order.
func MonthDays(entries []models.Entry, year int, month time.Month, now time.Time, location *time.Location) []CalendarDay {
	if location == nil {
		location = time.UTC
	}

	byDay := make(map[string][]models.Entry, len(entries))
	for _, entry := range entries {
		day := DateAtLocation(entry.Date, location)
		if day.Year() != year || day.Month() != month {
			continue
		}
		key := day.Format("2006-01-02")
		byDay[key] = append(byDay[key], entry)
	}

	today := DateAtLocation(now, location)
	first := time.Date(year, month, 1, 0, 0, 0, 0, location)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]CalendarDay, 0, daysInMonth)
	for dayNumber := 1; dayNumber <= daysInMonth; dayNumber++ {
		date := time.Date(year, month, dayNumber, 0, 0, 0, 0, location)
		key := date.Format("2006-01-02")

		dayEntries := byDay[key]
		if dayEntries == nil {
			dayEntries = []models.Entry{}
		}
		days = append(days, CalendarDay{
			Date:    key,
			Day:     dayNumber,
			IsToday: sameDay(date, today),
			Entries: dayEntries,
		})
	}
	return days
}
