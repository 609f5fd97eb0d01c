package models

// Category represents the area of the home a task belongs to.
type Category string

const (
	CategoryKitchen    Category = "kitchen"
	CategoryBathroom   Category = "bathroom"
	CategoryLivingArea Category = "living_area"
	CategoryBedroomPet Category = "bedroom_pet"
	CategoryGeneral    Category = "general"
)

// Priority represents how important a task is to household upkeep.
// Essential outranks High, which outranks Medium, which outranks Low.
type Priority string

const (
	PriorityEssential Priority = "essential"
	PriorityHigh      Priority = "high"
	PriorityMedium    Priority = "medium"
	PriorityLow       Priority = "low"
)

// Rank returns the ordering position of a priority, higher meaning more
// important. Unknown priorities rank below Low.
func (p Priority) Rank() int {
	switch p {
	case PriorityEssential:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Duration represents the rough effort bucket a task falls into.
type Duration string

const (
	DurationTwoMinute     Duration = "2min"
	DurationFiveMinute    Duration = "5min"
	DurationFifteenMinute Duration = "15min"
	DurationDelegate      Duration = "delegate"
)

// EnergyLevel is the user's self-reported capacity for the session.
// It is supplied fresh each session and never persisted with task data.
type EnergyLevel string

const (
	EnergyLow      EnergyLevel = "low"
	EnergyModerate EnergyLevel = "moderate"
	EnergyGood     EnergyLevel = "good"
)

// Task is a single catalog entry. The catalog is static: tasks carry fixed
// attributes and no mutable state.
type Task struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Category      Category `yaml:"category"`
	Priority      Priority `yaml:"priority"`
	FrequencyDays int      `yaml:"frequency_days"`
	Duration      Duration `yaml:"duration"`
}

// ScoredTask pairs a catalog task with its computed urgency score for one
// scoring pass. Scores are only comparable within a single pass.
type ScoredTask struct {
	Task    Task
	Score   float64
	InFocus bool
}
