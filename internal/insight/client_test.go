package insight

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bloomwell/bloom/internal/models"
)

func insightEntries(moods ...string) []models.Entry {
	entries := make([]models.Entry, 0, len(moods))
	for index, mood := range moods {
		entries = append(entries, models.Entry{
			ID:    string(rune('a' + index)),
			Title: "entry",
			Mood:  mood,
			Note:  "a note",
			Date:  time.Now().AddDate(0, 0, -index),
		})
	}
	return entries
}

func TestSummarizeEntriesWithoutBackendUsesFallback(t *testing.T) {
	t.Parallel()

	client := NewClient("", "gpt-4o-mini")
	if client.Enabled() {
		t.Fatal("expected client without API key to be disabled")
	}

	entries := insightEntries(models.MoodHappy, models.MoodCalm, models.MoodHappy)
	distribution := map[string]int{models.MoodHappy: 67, models.MoodCalm: 33}

	summary := client.SummarizeEntries(context.Background(), entries, distribution)
	if !strings.Contains(summary, "3 entries") {
		t.Fatalf("expected fallback summary to mention entry count, got %q", summary)
	}
	if !strings.Contains(summary, "positive moments") {
		t.Fatalf("expected positive-leaning summary for 100%% happy/calm, got %q", summary)
	}
}

func TestFallbackInsightBranches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		entries      []models.Entry
		distribution map[string]int
		wantFragment string
	}{
		{
			name:         "empty snapshot",
			entries:      nil,
			wantFragment: "insights will appear here",
		},
		{
			name:         "mostly positive",
			entries:      insightEntries(models.MoodHappy, models.MoodHappy),
			distribution: map[string]int{models.MoodHappy: 100},
			wantFragment: "positive moments",
		},
		{
			name:         "mostly challenging",
			entries:      insightEntries(models.MoodSad, models.MoodAnxious),
			distribution: map[string]int{models.MoodSad: 50, models.MoodAnxious: 50},
			wantFragment: "challenging days",
		},
		{
			name:         "balanced mix",
			entries:      insightEntries(models.MoodHappy, models.MoodSad),
			distribution: map[string]int{models.MoodHappy: 50, models.MoodSad: 50},
			wantFragment: "balanced mix",
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			summary := FallbackInsight(testCase.entries, testCase.distribution)
			if !strings.Contains(summary, testCase.wantFragment) {
				t.Fatalf("expected summary to contain %q, got %q", testCase.wantFragment, summary)
			}
		})
	}
}

func TestChatWithoutBackendReturnsCannedReply(t *testing.T) {
	t.Parallel()

	client := NewClient("", "gpt-4o-mini")
	reply, err := client.Chat(context.Background(), nil, "I feel overwhelmed today")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply == "" {
		t.Fatal("expected a non-empty canned reply")
	}
}

func TestBuildInsightPromptQuotesAtMostTenEntries(t *testing.T) {
	t.Parallel()

	entries := make([]models.Entry, 0, 15)
	for index := 0; index < 15; index++ {
		entries = append(entries, models.Entry{Mood: models.MoodCalm, Note: "note"})
	}

	prompt := buildInsightPrompt(entries, map[string]int{})
	if got := strings.Count(prompt, "[calm]"); got != 10 {
		t.Fatalf("expected 10 quoted entries, got %d", got)
	}
}
