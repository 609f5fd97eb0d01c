package core

import (
	"sort"

	"github.com/chorewheel/chorewheel/pkg/models"
)

// validCategories is the fixed category set the rotation and selector
// understand.
var validCategories = map[models.Category]bool{
	models.CategoryKitchen:    true,
	models.CategoryBathroom:   true,
	models.CategoryLivingArea: true,
	models.CategoryBedroomPet: true,
	models.CategoryGeneral:    true,
}

var validPriorities = map[models.Priority]bool{
	models.PriorityEssential: true,
	models.PriorityHigh:      true,
	models.PriorityMedium:    true,
	models.PriorityLow:       true,
}

var validDurations = map[models.Duration]bool{
	models.DurationTwoMinute:     true,
	models.DurationFiveMinute:    true,
	models.DurationFifteenMinute: true,
	models.DurationDelegate:      true,
}

// Catalog is a validated, immutable task list with ID lookup.
type Catalog struct {
	tasks []models.Task
	byID  map[string]models.Task
}

// NewCatalog validates the given tasks and builds a catalog. It returns an
// *InvalidCatalogError for a duplicate or empty ID, a non-positive frequency,
// or an unrecognized priority, category, or duration.
func NewCatalog(tasks []models.Task) (*Catalog, error) {
	byID := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		if t.ID == "" {
			return nil, &InvalidCatalogError{Reason: "task with empty ID"}
		}
		if _, dup := byID[t.ID]; dup {
			return nil, &InvalidCatalogError{TaskID: t.ID, Reason: "duplicate ID"}
		}
		if t.FrequencyDays <= 0 {
			return nil, &InvalidCatalogError{TaskID: t.ID, Reason: "frequency_days must be positive"}
		}
		if !validPriorities[t.Priority] {
			return nil, &InvalidCatalogError{TaskID: t.ID, Reason: "unrecognized priority " + string(t.Priority)}
		}
		if !validCategories[t.Category] {
			return nil, &InvalidCatalogError{TaskID: t.ID, Reason: "unrecognized category " + string(t.Category)}
		}
		if !validDurations[t.Duration] {
			return nil, &InvalidCatalogError{TaskID: t.ID, Reason: "unrecognized duration " + string(t.Duration)}
		}
		byID[t.ID] = t
	}

	ordered := make([]models.Task, len(tasks))
	copy(ordered, tasks)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	return &Catalog{tasks: ordered, byID: byID}, nil
}

// Tasks returns all catalog tasks ordered by ID.
func (c *Catalog) Tasks() []models.Task {
	out := make([]models.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Task looks up a task by ID.
func (c *Catalog) Task(id string) (models.Task, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Len returns the number of tasks in the catalog.
func (c *Catalog) Len() int {
	return len(c.tasks)
}
