package api

import (
	"time"

	"github.com/bloomwell/bloom/internal/insight"
	"github.com/bloomwell/bloom/internal/store"
)

type Handler struct {
	store    *store.Store
	insights *insight.Client
	location *time.Location
	now      func() time.Time
}

func NewHandler(recordStore *store.Store, insights *insight.Client, location *time.Location) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		store:    recordStore,
		insights: insights,
		location: location,
		now:      time.Now,
	}
}

type entryPayload struct {
	Title      string `json:"title"`
	Mood       string `json:"mood"`
	Note       string `json:"note"`
	Transcript string `json:"transcript"`
	Date       string `json:"date"`
}

type sleepPayload struct {
	Date    string  `json:"date"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
}

type resourcePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Icon        string `json:"icon"`
}

type chatPayload struct {
	Message string   `json:"message"`
	History []string `json:"history"`
}
