package models

import "time"

const (
	SleepQualityExcellent = "Excellent"
	SleepQualityGood      = "Good"
	SleepQualityFair      = "Fair"
	SleepQualityPoor      = "Poor"
	SleepQualityUnknown   = "Unknown"
)

// MaxSleepEntries bounds the sleep collection to roughly a year of
// nightly records; older entries are dropped on append.
const MaxSleepEntries = 365

// SleepEntry is one night of sleep. Date is user-editable and carries
// the calendar day the sleep belongs to, not the moment of logging.
type SleepEntry struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Hours   float64   `json:"hours"`
	Quality string    `json:"quality"`
}

func NormalizeSleepQuality(quality string) string {
	switch quality {
	case SleepQualityExcellent, SleepQualityGood, SleepQualityFair, SleepQualityPoor:
		return quality
	}
	return SleepQualityUnknown
}
