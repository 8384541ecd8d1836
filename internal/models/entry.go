package models

import "time"

const (
	MoodHappy   = "happy"
	MoodSad     = "sad"
	MoodAnxious = "anxious"
	MoodTired   = "tired"
	MoodAngry   = "angry"
	MoodCalm    = "calm"

	// MoodNeutral marks records whose stored mood is not part of the
	// fixed set. It never appears in distribution buckets.
	MoodNeutral = "neutral"
)

const DefaultEntryTitle = "Untitled"

// Entry is a single mood/journal record. Entries are immutable once
// created; the only allowed mutation is deletion.
type Entry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Mood       string    `json:"mood"`
	Note       string    `json:"note"`
	Transcript string    `json:"transcript,omitempty"`
	Date       time.Time `json:"date"`
}

func Moods() []string {
	return []string{MoodHappy, MoodSad, MoodAnxious, MoodTired, MoodAngry, MoodCalm}
}

func IsKnownMood(mood string) bool {
	switch mood {
	case MoodHappy, MoodSad, MoodAnxious, MoodTired, MoodAngry, MoodCalm:
		return true
	}
	return false
}

func MoodEmoji(mood string) string {
	switch mood {
	case MoodHappy:
		return "😊"
	case MoodSad:
		return "😔"
	case MoodAnxious:
		return "😰"
	case MoodTired:
		return "😴"
	case MoodAngry:
		return "😠"
	case MoodCalm:
		return "😌"
	}
	return "😐"
}
