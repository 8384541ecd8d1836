package store

import (
	"sort"
	"strings"

	"github.com/bloomwell/bloom/internal/models"
)

// LoadEntries returns the journal snapshot, most recent first. The
// order is recomputed on every read; a missing or corrupted blob yields
// the empty collection.
func (store *Store) LoadEntries() ([]models.Entry, error) {
	entries, err := store.loadEntriesRaw()
	if err != nil {
		return nil, err
	}
	for index := range entries {
		entries[index] = normalizeEntry(entries[index])
	}
	sortEntriesRecentFirst(entries)
	return entries, nil
}

// AppendEntry adds a journal record, assigning an id and creation
// timestamp when absent, and returns the updated snapshot.
func (store *Store) AppendEntry(entry models.Entry) ([]models.Entry, error) {
	entries, err := store.loadEntriesRaw()
	if err != nil {
		return nil, err
	}

	if entry.Date.IsZero() {
		entry.Date = store.clock()
	}
	if entry.ID == "" {
		entry.ID = store.newID(entry.Date)
	}
	entry = normalizeEntry(entry)

	entries = append(entries, entry)
	if err := store.writeCollection(entriesKey, entries); err != nil {
		return nil, err
	}

	sortEntriesRecentFirst(entries)
	return entries, nil
}

// RemoveEntry deletes the record with the given id. Unknown ids are a
// no-op, not an error; the result is the same either way.
func (store *Store) RemoveEntry(id string) ([]models.Entry, error) {
	entries, err := store.loadEntriesRaw()
	if err != nil {
		return nil, err
	}

	kept := make([]models.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if err := store.writeCollection(entriesKey, kept); err != nil {
		return nil, err
	}

	sortEntriesRecentFirst(kept)
	return kept, nil
}

// ClearEntries empties the journal collection and persists the empty
// state.
func (store *Store) ClearEntries() error {
	return store.writeCollection(entriesKey, []models.Entry{})
}

func (store *Store) loadEntriesRaw() ([]models.Entry, error) {
	raw, found, err := store.kv.Get(entriesKey)
	if err != nil {
		return nil, err
	}
	entries := make([]models.Entry, 0)
	if !found {
		return entries, nil
	}
	if unmarshalErr := unmarshalCollection(raw, &entries); unmarshalErr != nil {
		return []models.Entry{}, nil
	}
	return entries, nil
}

// normalizeEntry resolves record defaults once at the store boundary:
// blank titles become "Untitled" and moods outside the fixed set fall
// back to the neutral marker.
func normalizeEntry(entry models.Entry) models.Entry {
	if strings.TrimSpace(entry.Title) == "" {
		entry.Title = models.DefaultEntryTitle
	}
	if !models.IsKnownMood(entry.Mood) {
		entry.Mood = models.MoodNeutral
	}
	return entry
}

func sortEntriesRecentFirst(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].Date.After(entries[j].Date)
	})
}
