package analytics

import "time"

type StreakSummary struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streaks walks the distinct calendar days carrying at least one record
// and measures consecutive-day runs. The current streak anchors at
// today when today has a record, otherwise at the most recent recorded
// day, and ends at the first gap. The longest streak is the maximum run
// anywhere in the history, not only the trailing one.
func Streaks(dates []time.Time, location *time.Location) StreakSummary {
	days := dedupDaysDescending(dates, location)
	if len(days) == 0 {
		return StreakSummary{}
	}

	current := 1
	for index := 1; index < len(days); index++ {
		if sameDay(days[index], days[index-1].AddDate(0, 0, -1)) {
			current++
			continue
		}
		break
	}

	longest := 1
	run := 1
	for index := 1; index < len(days); index++ {
		if sameDay(days[index], days[index-1].AddDate(0, 0, -1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return StreakSummary{Current: current, Longest: longest}
}
