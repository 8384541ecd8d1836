package store

import (
	"errors"
	"fmt"

	"github.com/bloomwell/bloom/internal/models"
)

var ErrSleepHoursOutOfRange = errors.New("sleep hours must be between 0 and 24")

// LoadSleepEntries returns the sleep log snapshot in insertion order.
func (store *Store) LoadSleepEntries() ([]models.SleepEntry, error) {
	return store.loadSleepRaw()
}

// AppendSleepEntry validates and adds a sleep record. Validation runs
// before any mutation: out-of-range hours reject with the violated
// constraint and leave the stored collection untouched. The collection
// is capped to the most recent MaxSleepEntries records.
func (store *Store) AppendSleepEntry(entry models.SleepEntry) ([]models.SleepEntry, error) {
	if entry.Hours < 0 || entry.Hours > 24 {
		return nil, fmt.Errorf("%w, got %g", ErrSleepHoursOutOfRange, entry.Hours)
	}

	entries, err := store.loadSleepRaw()
	if err != nil {
		return nil, err
	}

	if entry.Date.IsZero() {
		entry.Date = store.clock()
	}
	if entry.ID == "" {
		entry.ID = store.newID(store.clock())
	}
	entry.Quality = models.NormalizeSleepQuality(entry.Quality)

	entries = append(entries, entry)
	if len(entries) > models.MaxSleepEntries {
		entries = entries[len(entries)-models.MaxSleepEntries:]
	}

	if err := store.writeCollection(sleepKey, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// RemoveSleepEntry deletes by id; unknown ids are a no-op.
func (store *Store) RemoveSleepEntry(id string) ([]models.SleepEntry, error) {
	entries, err := store.loadSleepRaw()
	if err != nil {
		return nil, err
	}

	kept := make([]models.SleepEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if err := store.writeCollection(sleepKey, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (store *Store) ClearSleepEntries() error {
	return store.writeCollection(sleepKey, []models.SleepEntry{})
}

func (store *Store) loadSleepRaw() ([]models.SleepEntry, error) {
	raw, found, err := store.kv.Get(sleepKey)
	if err != nil {
		return nil, err
	}
	entries := make([]models.SleepEntry, 0)
	if !found {
		return entries, nil
	}
	if unmarshalErr := unmarshalCollection(raw, &entries); unmarshalErr != nil {
		return []models.SleepEntry{}, nil
	}
	return entries, nil
}
