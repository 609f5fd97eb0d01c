package models

// Recommendation is a single entry in an ordered recommendation list.
type Recommendation struct {
	TaskID   string   `yaml:"task_id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Priority Priority `yaml:"priority"`
	Duration Duration `yaml:"duration"`
	Score    float64  `yaml:"score"`
	InFocus  bool     `yaml:"in_focus,omitempty"`
}

// DayPlan is the cached recommendation set for one calendar day, holding the
// ordered list per energy level. It is a derived record: the core can always
// recompute it from the catalog, ledger, and date, so losing the cache is
// harmless.
type DayPlan struct {
	Date          string                           `yaml:"date"`
	WeekNumber    int                              `yaml:"week_number"`
	FocusCategory Category                         `yaml:"focus_category"`
	ByEnergy      map[EnergyLevel][]Recommendation `yaml:"by_energy"`
}
