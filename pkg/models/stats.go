package models

// FrequencyStats breaks completion figures down for one expected-frequency
// bucket (all tasks sharing the same FrequencyDays).
type FrequencyStats struct {
	FrequencyDays int `json:"frequency_days"`
	TotalTasks    int `json:"total_tasks"`
	EverCompleted int `json:"ever_completed"`
	Overdue       int `json:"overdue"`
}

// Stats summarises ledger state as of a given day.
type Stats struct {
	AsOf              string           `json:"as_of"`
	TotalTasks        int              `json:"total_tasks"`
	TotalCompletions  int              `json:"total_completions"`
	CompletionRate    float64          `json:"completion_rate"`
	CurrentStreak     int              `json:"current_streak"`
	LongestStreak     int              `json:"longest_streak"`
	RecentWindowDays  int              `json:"recent_window_days"`
	RecentCompletions int              `json:"recent_completions"`
	MostCompletedID   string           `json:"most_completed_id,omitempty"`
	MostCompletedN    int              `json:"most_completed_n,omitempty"`
	ByFrequency       []FrequencyStats `json:"by_frequency"`
}

// HistoryEntry is one row of the per-task completion history view.
type HistoryEntry struct {
	TaskID        string   `json:"task_id"`
	Name          string   `json:"name"`
	Priority      Priority `json:"priority"`
	FrequencyDays int      `json:"frequency_days"`
	LastDone      string   `json:"last_done,omitempty"`
	DaysSince     int      `json:"days_since"`
	NeverDone     bool     `json:"never_done"`
	Count         int      `json:"count"`
	Due           bool     `json:"due"`
}
