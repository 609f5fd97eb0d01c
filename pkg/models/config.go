package models

// GlobalConfig holds system-wide settings read from .chorewheelrc via Viper.
// The scoring knobs live here rather than in code so the urgency policy can
// be tuned without touching the algorithm's structure.
type GlobalConfig struct {
	// NeverDoneMultiplier scales a task's frequency to the days-since
	// sentinel used when the task has never been completed.
	NeverDoneMultiplier float64 `yaml:"never_done_multiplier" mapstructure:"never_done_multiplier"`

	// FocusBoost multiplies the urgency score of tasks in this week's
	// focus category. Must be > 1 to have any effect.
	FocusBoost float64 `yaml:"focus_boost" mapstructure:"focus_boost"`

	// PriorityWeights maps each priority tier to its score weight.
	PriorityWeights map[Priority]float64 `yaml:"priority_weights" mapstructure:"priority_weights"`

	// EnergyCaps limits recommendation list length per energy level.
	// A cap of 0 means uncapped.
	EnergyCaps map[EnergyLevel]int `yaml:"energy_caps" mapstructure:"energy_caps"`

	// Rotation is the ordered focus-category sequence cycled week by week.
	Rotation []Category `yaml:"rotation" mapstructure:"rotation"`

	// StatsWindowDays bounds the recent-activity window in statistics.
	StatsWindowDays int `yaml:"stats_window_days" mapstructure:"stats_window_days"`
}
