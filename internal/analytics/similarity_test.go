package analytics

import (
	"testing"

	"github.com/bloomwell/bloom/internal/models"
)

func testLibrary() []models.Resource {
	return []models.Resource{
		{ID: "r1", Title: "Postpartum Depression Guide", Description: "Understanding symptoms and when to seek help", Category: "Mental Health"},
		{ID: "r2", Title: "Find a Therapist", Description: "Local specialists in postpartum care", Category: "Mental Health"},
		{ID: "r3", Title: "Sleep Strategies", Description: "Maximizing rest with a newborn", Category: "Self-Care"},
		{ID: "r4", Title: "Nutrition Guide", Description: "Postpartum meal ideas and tips", Category: "Self-Care"},
	}
}

func TestSimilaritySymmetry(t *testing.T) {
	t.Parallel()

	library := testLibrary()
	for _, a := range library {
		for _, b := range library {
			forward := Similarity(a, b)
			backward := Similarity(b, a)
			if forward != backward {
				t.Fatalf("similarity(%s,%s)=%g differs from similarity(%s,%s)=%g", a.ID, b.ID, forward, b.ID, a.ID, backward)
			}
		}
	}
}

func TestSimilaritySelfIdentity(t *testing.T) {
	t.Parallel()

	for _, resource := range testLibrary() {
		if got := Similarity(resource, resource); got != 1 {
			t.Fatalf("expected self-similarity 1 for %s, got %g", resource.ID, got)
		}
	}
}

func TestSimilarityBothEmptyTokenSets(t *testing.T) {
	t.Parallel()

	a := models.Resource{ID: "a", Title: "!!!"}
	b := models.Resource{ID: "b", Title: "???"}
	if got := Similarity(a, b); got != 0 {
		t.Fatalf("expected 0 for two empty token sets, got %g", got)
	}
}

func TestTokenSetStripsPunctuationAndCase(t *testing.T) {
	t.Parallel()

	tokens := TokenSet(models.Resource{Title: "Sleep, Strategies!", Description: "REST & rest", Category: "self-care"})
	want := []string{"sleep", "strategies", "rest", "self", "care"}
	if len(tokens) != len(want) {
		t.Fatalf("expected tokens %v, got %v", want, tokens)
	}
	for _, token := range want {
		if _, exists := tokens[token]; !exists {
			t.Fatalf("expected token %q in %v", token, tokens)
		}
	}
}

func TestRecommendExcludesSelfAndRanksByScore(t *testing.T) {
	t.Parallel()

	ranked := Recommend(testLibrary(), "r1", 3)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(ranked))
	}
	for _, recommendation := range ranked {
		if recommendation.Resource.ID == "r1" {
			t.Fatal("expected self to be excluded from recommendations")
		}
	}
	for index := 1; index < len(ranked); index++ {
		if ranked[index].Score > ranked[index-1].Score {
			t.Fatalf("expected descending scores, got %g before %g", ranked[index-1].Score, ranked[index].Score)
		}
	}
}

func TestRecommendStableTieBreakKeepsCollectionOrder(t *testing.T) {
	t.Parallel()

	// Identical token overlap with the subject for both candidates.
	library := []models.Resource{
		{ID: "subject", Title: "alpha beta"},
		{ID: "first", Title: "alpha gamma"},
		{ID: "second", Title: "alpha delta"},
	}

	ranked := Recommend(library, "subject", 2)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(ranked))
	}
	if ranked[0].Resource.ID != "first" || ranked[1].Resource.ID != "second" {
		t.Fatalf("expected tie to preserve collection order, got %s then %s", ranked[0].Resource.ID, ranked[1].Resource.ID)
	}
}

func TestRecommendUnknownIDReturnsEmpty(t *testing.T) {
	t.Parallel()

	ranked := Recommend(testLibrary(), "missing", 5)
	if len(ranked) != 0 {
		t.Fatalf("expected empty result for unknown id, got %d", len(ranked))
	}
}

func TestRecommendTruncatesToK(t *testing.T) {
	t.Parallel()

	ranked := Recommend(testLibrary(), "r2", 1)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(ranked))
	}
}
