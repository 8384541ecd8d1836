package analytics

import (
	"sort"
	"time"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// dedupDaysDescending reduces timestamps to their distinct calendar
// days, most recent first. Multiple records on one day collapse to a
// single day so streaks never double-count.
func dedupDaysDescending(values []time.Time, location *time.Location) []time.Time {
	seen := make(map[string]struct{}, len(values))
	days := make([]time.Time, 0, len(values))
	for _, value := range values {
		day := DateAtLocation(value, location)
		key := day.Format("2006-01-02")
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})
	return days
}
