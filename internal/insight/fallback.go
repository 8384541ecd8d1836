package insight

import (
	"fmt"

	"github.com/bloomwell/bloom/internal/models"
)

// FallbackInsight is the rule-based summary shown whenever the hosted
// model is unconfigured or unreachable. It reads only the snapshot it
// is given.
func FallbackInsight(entries []models.Entry, distribution map[string]int) string {
	if len(entries) == 0 {
		return "Your insights will appear here as you add journal entries. " +
			"Tracking your moods helps identify patterns and celebrate progress."
	}

	positive := distribution[models.MoodHappy] + distribution[models.MoodCalm]
	challenging := distribution[models.MoodAnxious] + distribution[models.MoodSad] + distribution[models.MoodTired]

	summary := fmt.Sprintf("Based on your %d entries, I notice you've been tracking your journey consistently. ", len(entries))
	switch {
	case positive > 60:
		summary += fmt.Sprintf("You're experiencing many positive moments (%d%% happy/calm entries), which is wonderful to see. ", positive)
	case challenging > 50:
		summary += fmt.Sprintf("You're navigating some challenging days (%d%% tired/anxious/sad entries). Remember that these feelings are normal and temporary. ", challenging)
	default:
		summary += "You're showing a balanced mix of emotions, which is very common in postpartum adjustment. "
	}
	summary += "Keep honoring all your feelings - each entry helps you understand yourself better during this transition."
	return summary
}

// FallbackChatReply is the canned companion reply used without a
// configured backend.
func FallbackChatReply(message string) string {
	if message == "" {
		return "I'm here whenever you want to talk about how things are going."
	}
	return "Thank you for sharing that with me. Whatever you're feeling right now is valid - " +
		"the postpartum period brings intense ups and downs, and talking about them helps. " +
		"If a low mood sticks around for more than two weeks, please consider reaching out to your care provider."
}
