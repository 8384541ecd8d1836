package models

const (
	DefaultMonthlyEntryGoal = 20
	MinMonthlyEntryGoal     = 1
	MaxMonthlyEntryGoal     = 100
)

const (
	SharingPrivate    = "private"
	SharingAnonymized = "anonymized"
)

type Settings struct {
	DisplayName      string `json:"display_name"`
	Email            string `json:"email"`
	DataSharing      string `json:"data_sharing"`
	DailyReminders   bool   `json:"daily_reminders"`
	WeeklyInsights   bool   `json:"weekly_insights"`
	MonthlyEntryGoal int    `json:"monthly_entry_goal"`
}

func DefaultSettings() Settings {
	return Settings{
		DataSharing:      SharingPrivate,
		DailyReminders:   true,
		WeeklyInsights:   true,
		MonthlyEntryGoal: DefaultMonthlyEntryGoal,
	}
}

// ClampMonthlyEntryGoal bounds the goal at configuration time so the
// progress computation never divides by zero or chases an absurd target.
func ClampMonthlyEntryGoal(goal int) int {
	if goal < MinMonthlyEntryGoal {
		return MinMonthlyEntryGoal
	}
	if goal > MaxMonthlyEntryGoal {
		return MaxMonthlyEntryGoal
	}
	return goal
}
