// Package demo synthesizes sample records for first-run exploration.
// The generators are deterministic for a given seed so demo databases
// are reproducible; analytics never consumes anything but the stored
// snapshot, so everything here goes through the regular store paths.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bloomwell/bloom/internal/models"
	"github.com/bloomwell/bloom/internal/store"
)

var sampleNotes = []string{
	"Managed a short walk with the stroller today.",
	"Feeding schedule finally settling into a rhythm.",
	"Rough night, but the morning felt calmer.",
	"Called a friend and it helped more than expected.",
	"Too tired to cook, ordered in and rested instead.",
	"Baby smiled for the first time. Everything else can wait.",
	"Felt overwhelmed this afternoon, breathing exercises helped.",
	"First full night of sleep in weeks.",
}

var sampleTitles = []string{
	"Morning check-in",
	"Afternoon slump",
	"Small win",
	"Hard day",
	"Quiet evening",
}

// Entries returns count journal entries spread over the trailing days,
// newest last so append order matches record order.
func Entries(seed int64, count int, now time.Time) []models.Entry {
	rng := rand.New(rand.NewSource(seed))
	moods := models.Moods()

	entries := make([]models.Entry, 0, count)
	for index := count - 1; index >= 0; index-- {
		date := now.AddDate(0, 0, -index)
		entries = append(entries, models.Entry{
			Title: sampleTitles[rng.Intn(len(sampleTitles))],
			Mood:  moods[rng.Intn(len(moods))],
			Note:  sampleNotes[rng.Intn(len(sampleNotes))],
			Date:  date.Add(time.Duration(rng.Intn(12)) * time.Hour),
		})
	}
	return entries
}

// SleepEntries returns one night per trailing day with plausible hours.
func SleepEntries(seed int64, nights int, now time.Time) []models.SleepEntry {
	rng := rand.New(rand.NewSource(seed))
	qualities := []string{
		models.SleepQualityExcellent,
		models.SleepQualityGood,
		models.SleepQualityFair,
		models.SleepQualityPoor,
	}

	entries := make([]models.SleepEntry, 0, nights)
	for index := nights - 1; index >= 0; index-- {
		hours := 4 + rng.Float64()*5
		entries = append(entries, models.SleepEntry{
			Date:    now.AddDate(0, 0, -index),
			Hours:   float64(int(hours*2)) / 2,
			Quality: qualities[rng.Intn(len(qualities))],
		})
	}
	return entries
}

// Seed populates an empty store with demo records. Collections that
// already hold data are left alone so a re-run never duplicates.
func Seed(recordStore *store.Store, seed int64, now time.Time) error {
	if err := recordStore.SeedDefaultResources(); err != nil {
		return fmt.Errorf("seeding resources: %w", err)
	}

	existing, err := recordStore.LoadEntries()
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}
	if len(existing) == 0 {
		for _, entry := range Entries(seed, 21, now) {
			if _, err := recordStore.AppendEntry(entry); err != nil {
				return fmt.Errorf("seeding entries: %w", err)
			}
		}
	}

	nights, err := recordStore.LoadSleepEntries()
	if err != nil {
		return fmt.Errorf("loading sleep log: %w", err)
	}
	if len(nights) == 0 {
		for _, entry := range SleepEntries(seed, 14, now) {
			if _, err := recordStore.AppendSleepEntry(entry); err != nil {
				return fmt.Errorf("seeding sleep log: %w", err)
			}
		}
	}
	return nil
}
