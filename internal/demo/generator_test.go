package demo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/bloomwell/bloom/internal/db"
	"github.com/bloomwell/bloom/internal/models"
	"github.com/bloomwell/bloom/internal/store"
)

func TestEntriesAreDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	first := Entries(42, 10, now)
	second := Entries(42, 10, now)
	if len(first) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(first))
	}
	for index := range first {
		if first[index] != second[index] {
			t.Fatalf("same seed diverged at %d: %+v vs %+v", index, first[index], second[index])
		}
	}

	other := Entries(7, 10, now)
	same := true
	for index := range first {
		if first[index] != other[index] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical entries")
	}
}

func TestSleepEntriesStayInRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	for _, entry := range SleepEntries(3, 30, now) {
		if entry.Hours < 0 || entry.Hours > 24 {
			t.Fatalf("generated hours out of range: %g", entry.Hours)
		}
		if models.NormalizeSleepQuality(entry.Quality) == models.SleepQualityUnknown {
			t.Fatalf("generated unknown quality: %q", entry.Quality)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	t.Parallel()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "demo.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	recordStore := store.NewStore(db.NewBlobRepository(database))

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	if err := Seed(recordStore, 1, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Seed(recordStore, 1, now); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	entries, err := recordStore.LoadEntries()
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 21 {
		t.Fatalf("expected 21 entries after reseeding, got %d", len(entries))
	}

	nights, err := recordStore.LoadSleepEntries()
	if err != nil {
		t.Fatalf("load sleep log: %v", err)
	}
	if len(nights) != 14 {
		t.Fatalf("expected 14 nights after reseeding, got %d", len(nights))
	}

	resources, err := recordStore.LoadResources()
	if err != nil {
		t.Fatalf("load resources: %v", err)
	}
	if len(resources) != len(models.DefaultResources()) {
		t.Fatalf("expected default resources once, got %d", len(resources))
	}
}
