package models

import "time"

// CategoryAll is the synthetic filter value covering every category.
// It is never stored on a resource.
const CategoryAll = "All"

// Resource is an item in the support library: an article, a hotline, an
// exercise, or an uploaded document.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	URL         string    `json:"url,omitempty"`
	Filename    string    `json:"filename,omitempty"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DefaultResources seeds the library on first run with the built-in
// support content the panels link to.
func DefaultResources() []Resource {
	return []Resource{
		{Title: "Postpartum Depression Guide", Description: "Understanding symptoms and when to seek help", Category: "Mental Health", Icon: "📚"},
		{Title: "Find a Therapist", Description: "Local specialists in postpartum care", Category: "Mental Health", Icon: "🩺"},
		{Title: "Crisis Hotlines", Description: "24/7 support for immediate help", Category: "Mental Health", Icon: "📞"},
		{Title: "5-Minute Breathing Exercises", Description: "Quick techniques for stressful moments", Category: "Self-Care", Icon: "🧘"},
		{Title: "Sleep Strategies", Description: "Maximizing rest with a newborn", Category: "Self-Care", Icon: "🛌"},
		{Title: "Nutrition Guide", Description: "Postpartum meal ideas and tips", Category: "Self-Care", Icon: "🍎"},
	}
}
