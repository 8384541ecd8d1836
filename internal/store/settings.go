package store

import (
	"strings"

	"github.com/bloomwell/bloom/internal/models"
)

// LoadSettings returns the persisted settings, substituting defaults
// when nothing was saved yet or the stored blob is corrupted.
func (store *Store) LoadSettings() (models.Settings, error) {
	raw, found, err := store.kv.Get(settingsKey)
	if err != nil {
		return models.Settings{}, err
	}
	if !found {
		return models.DefaultSettings(), nil
	}

	settings := models.DefaultSettings()
	if unmarshalErr := unmarshalCollection(raw, &settings); unmarshalErr != nil {
		return models.DefaultSettings(), nil
	}
	return normalizeSettings(settings), nil
}

// SaveSettings clamps and persists the settings, returning what was
// actually stored.
func (store *Store) SaveSettings(settings models.Settings) (models.Settings, error) {
	settings = normalizeSettings(settings)
	if err := store.writeCollection(settingsKey, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func normalizeSettings(settings models.Settings) models.Settings {
	settings.DisplayName = strings.TrimSpace(settings.DisplayName)
	settings.Email = strings.TrimSpace(settings.Email)
	if settings.DataSharing != models.SharingAnonymized {
		settings.DataSharing = models.SharingPrivate
	}
	settings.MonthlyEntryGoal = models.ClampMonthlyEntryGoal(settings.MonthlyEntryGoal)
	return settings
}
