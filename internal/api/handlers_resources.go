package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bloomwell/bloom/internal/analytics"
	"github.com/bloomwell/bloom/internal/models"
	"github.com/bloomwell/bloom/internal/store"
)

const defaultRecommendationLimit = 3

func (handler *Handler) GetResources(c *fiber.Ctx) error {
	resources, err := handler.store.LoadResources()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch resources")
	}

	category := c.Query("category")
	if category != "" && category != models.CategoryAll {
		filtered := make([]models.Resource, 0, len(resources))
		for _, resource := range resources {
			if resource.Category == category {
				filtered = append(filtered, resource)
			}
		}
		resources = filtered
	}
	return c.JSON(resources)
}

func (handler *Handler) CreateResource(c *fiber.Ctx) error {
	var payload resourcePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	resources, err := handler.store.AppendResource(models.Resource{
		Title:       payload.Title,
		Description: payload.Description,
		Category:    payload.Category,
		URL:         payload.URL,
		Filename:    payload.Filename,
		Icon:        payload.Icon,
	})
	if err != nil {
		if errors.Is(err, store.ErrResourceTitleRequired) {
			return apiError(c, fiber.StatusBadRequest, "title is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save resource")
	}
	return c.Status(fiber.StatusCreated).JSON(resources)
}

func (handler *Handler) DeleteResource(c *fiber.Ctx) error {
	resources, err := handler.store.RemoveResource(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete resource")
	}
	return c.JSON(resources)
}

func (handler *Handler) GetResourceCategories(c *fiber.Ctx) error {
	resources, err := handler.store.LoadResources()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch resources")
	}
	return c.JSON(store.ResourceCategories(resources))
}

func (handler *Handler) GetRecommendations(c *fiber.Ctx) error {
	resources, err := handler.store.LoadResources()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch resources")
	}

	limit := parseLimitQuery(c.Query("limit"), defaultRecommendationLimit)
	return c.JSON(analytics.Recommend(resources, c.Params("id"), limit))
}
