package analytics

import (
	"testing"
	"time"

	"github.com/bloomwell/bloom/internal/models"
)

func TestSummarizeSleepWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	entries := []models.SleepEntry{
		{ID: "s1", Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Hours: 6, Quality: models.SleepQualityFair},
		{ID: "s2", Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), Hours: 8, Quality: models.SleepQualityGood},
		{ID: "s3", Date: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), Hours: 7, Quality: models.SleepQualityGood},
		// Outside the 7-night window.
		{ID: "s4", Date: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), Hours: 2, Quality: models.SleepQualityPoor},
	}

	summary := SummarizeSleep(entries, 7, now, time.UTC)
	if summary.Nights != 3 {
		t.Fatalf("expected 3 nights in window, got %d", summary.Nights)
	}
	if summary.AverageHours != 7 {
		t.Fatalf("expected average 7 hours, got %g", summary.AverageHours)
	}
	if summary.QualityCounts[models.SleepQualityGood] != 2 {
		t.Fatalf("expected 2 good nights, got %d", summary.QualityCounts[models.SleepQualityGood])
	}
	if summary.QualityCounts[models.SleepQualityPoor] != 0 {
		t.Fatalf("expected poor night outside window to be ignored, got %d", summary.QualityCounts[models.SleepQualityPoor])
	}
}

func TestSummarizeSleepEmptyWindow(t *testing.T) {
	t.Parallel()

	summary := SummarizeSleep(nil, 7, time.Now(), time.UTC)
	if summary.Nights != 0 || summary.AverageHours != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestMonthDaysGroupsEntriesByCalendarDay(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	entries := []models.Entry{
		moodEntry(models.MoodHappy, time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)),
		moodEntry(models.MoodTired, time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)),
		moodEntry(models.MoodCalm, time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)),
		// Different month, must not appear.
		moodEntry(models.MoodSad, time.Date(2026, 2, 28, 7, 0, 0, 0, time.UTC)),
	}

	days := MonthDays(entries, 2026, time.March, now, time.UTC)
	if len(days) != 31 {
		t.Fatalf("expected 31 calendar days for March, got %d", len(days))
	}
	if len(days[9].Entries) != 2 {
		t.Fatalf("expected 2 entries on March 10, got %d", len(days[9].Entries))
	}
	if !days[9].IsToday {
		t.Fatal("expected March 10 to be marked today")
	}
	if len(days[0].Entries) != 1 {
		t.Fatalf("expected 1 entry on March 1, got %d", len(days[0].Entries))
	}
	if len(days[1].Entries) != 0 {
		t.Fatalf("expected empty day to carry an empty slice, got %d entries", len(days[1].Entries))
	}
}
