package analytics

import (
	"math"

	"github.com/bloomwell/bloom/internal/models"
)

// MoodDistribution computes, for the fixed mood enumeration, the share
// of entries carrying each mood as a whole percentage. An empty
// snapshot yields all zeros, never NaN; callers show a placeholder
// instead of a chart in that case.
func MoodDistribution(entries []models.Entry) map[string]int {
	distribution := make(map[string]int, len(models.Moods()))
	for _, mood := range models.Moods() {
		distribution[mood] = 0
	}
	if len(entries) == 0 {
		return distribution
	}

	counts := make(map[string]int, len(entries))
	for _, entry := range entries {
		counts[entry.Mood]++
	}

	total := float64(len(entries))
	for _, mood := range models.Moods() {
		distribution[mood] = int(math.Round(float64(counts[mood]) / total * 100))
	}
	return distribution
}

// MoodScore maps each mood onto a 1..5 well-being scale used for
// averages and period-over-period trends. The neutral marker and any
// unknown value sit at the midpoint.
func MoodScore(mood string) float64 {
	switch mood {
	case models.MoodHappy:
		return 5
	case models.MoodCalm:
		return 4
	case models.MoodTired:
		return 3
	case models.MoodAnxious:
		return 2
	case models.MoodSad, models.MoodAngry:
		return 1
	}
	return 3
}

// AverageMoodScore returns the mean score over a snapshot, 0 when
// empty.
func AverageMoodScore(entries []models.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var total float64
	for _, entry := range entries {
		total += MoodScore(entry.Mood)
	}
	return total / float64(len(entries))
}

// PositiveShare returns the whole percentage of entries with happy or
// calm moods.
func PositiveShare(entries []models.Entry) int {
	if len(entries) == 0 {
		return 0
	}
	positive := 0
	for _, entry := range entries {
		if entry.Mood == models.MoodHappy || entry.Mood == models.MoodCalm {
			positive++
		}
	}
	return int(math.Round(float64(positive) / float64(len(entries)) * 100))
}
