package store

import (
	"errors"
	"sort"
	"strings"

	"github.com/bloomwell/bloom/internal/models"
)

var ErrResourceTitleRequired = errors.New("resource title must not be empty")

const defaultResourceIcon = "📄"

// LoadResources returns the library snapshot in insertion order.
func (store *Store) LoadResources() ([]models.Resource, error) {
	return store.loadResourcesRaw()
}

// AppendResource validates and adds a library item.
func (store *Store) AppendResource(resource models.Resource) ([]models.Resource, error) {
	if strings.TrimSpace(resource.Title) == "" {
		return nil, ErrResourceTitleRequired
	}

	resources, err := store.loadResourcesRaw()
	if err != nil {
		return nil, err
	}

	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = store.clock()
	}
	if resource.ID == "" {
		resource.ID = store.newID(resource.CreatedAt)
	}
	if strings.TrimSpace(resource.Icon) == "" {
		resource.Icon = defaultResourceIcon
	}

	resources = append(resources, resource)
	if err := store.writeCollection(resourcesKey, resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// RemoveResource deletes by id; unknown ids are a no-op.
func (store *Store) RemoveResource(id string) ([]models.Resource, error) {
	resources, err := store.loadResourcesRaw()
	if err != nil {
		return nil, err
	}

	kept := make([]models.Resource, 0, len(resources))
	for _, resource := range resources {
		if resource.ID != id {
			kept = append(kept, resource)
		}
	}
	if err := store.writeCollection(resourcesKey, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (store *Store) ClearResources() error {
	return store.writeCollection(resourcesKey, []models.Resource{})
}

// ResourceCategories derives the category list from the current
// snapshot: "All" first, then the distinct categories alphabetically.
func ResourceCategories(resources []models.Resource) []string {
	seen := make(map[string]struct{}, len(resources))
	distinct := make([]string, 0, len(resources))
	for _, resource := range resources {
		category := strings.TrimSpace(resource.Category)
		if category == "" {
			continue
		}
		if _, exists := seen[category]; exists {
			continue
		}
		seen[category] = struct{}{}
		distinct = append(distinct, category)
	}
	sort.Strings(distinct)
	return append([]string{models.CategoryAll}, distinct...)
}

// SeedDefaultResources fills an empty library with the built-in support
// content. A non-empty library is left untouched.
func (store *Store) SeedDefaultResources() error {
	resources, err := store.loadResourcesRaw()
	if err != nil {
		return err
	}
	if len(resources) > 0 {
		return nil
	}

	for _, resource := range models.DefaultResources() {
		if _, err := store.AppendResource(resource); err != nil {
			return err
		}
	}
	return nil
}

func (store *Store) loadResourcesRaw() ([]models.Resource, error) {
	raw, found, err := store.kv.Get(resourcesKey)
	if err != nil {
		return nil, err
	}
	resources := make([]models.Resource, 0)
	if !found {
		return resources, nil
	}
	if unmarshalErr := unmarshalCollection(raw, &resources); unmarshalErr != nil {
		return []models.Resource{}, nil
	}
	return resources, nil
}
