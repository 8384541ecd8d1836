package analytics

import (
	"sort"
	"strings"

	"github.com/bloomwell/bloom/internal/models"
)

// TokenSet reduces a resource to the distinct lowercase words of its
// title, description, and category. Non-alphanumeric runes split
// tokens; empty tokens are dropped.
func TokenSet(resource models.Resource) map[string]struct{} {
	combined := strings.ToLower(resource.Title + " " + resource.Description + " " + resource.Category)
	fields := strings.FieldsFunc(combined, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})

	tokens := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		tokens[field] = struct{}{}
	}
	return tokens
}

// Similarity scores two resources by the Jaccard index of their token
// sets: intersection over union, 0 when both sets are empty. A
// resource compared with itself scores 1 by convention.
func Similarity(a models.Resource, b models.Resource) float64 {
	if a.ID != "" && a.ID == b.ID {
		return 1
	}

	tokensA := TokenSet(a)
	tokensB := TokenSet(b)
	if len(tokensA) == 0 && len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for token := range tokensA {
		if _, shared := tokensB[token]; shared {
			intersection++
		}
	}
	union := len(tokensA) + len(tokensB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

type Recommendation struct {
	Resource models.Resource `json:"resource"`
	Score    float64         `json:"score"`
}

// Recommend ranks every other resource by similarity to the one with
// the given id and returns the top k. Equal scores keep the original
// collection order. An id absent from the snapshot yields an empty
// result, not an error.
func Recommend(resources []models.Resource, id string, k int) []Recommendation {
	var subject *models.Resource
	for index := range resources {
		if resources[index].ID == id {
			subject = &resources[index]
			break
		}
	}
	if subject == nil || k <= 0 {
		return []Recommendation{}
	}

	ranked := make([]Recommendation, 0, len(resources)-1)
	for _, candidate := range resources {
		if candidate.ID == id {
			continue
		}
		ranked = append(ranked, Recommendation{
			Resource: candidate,
			Score:    Similarity(*subject, candidate),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}
