package storage

import (
	"testing"

	"github.com/chorewheel/chorewheel/pkg/models"
)

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	tasks := DefaultCatalog()
	if len(tasks) == 0 {
		t.Fatal("default catalog is empty")
	}

	validCategories := map[models.Category]bool{
		models.CategoryKitchen:    true,
		models.CategoryBathroom:   true,
		models.CategoryLivingArea: true,
		models.CategoryBedroomPet: true,
		models.CategoryGeneral:    true,
	}
	validDurations := map[models.Duration]bool{
		models.DurationTwoMinute:     true,
		models.DurationFiveMinute:    true,
		models.DurationFifteenMinute: true,
		models.DurationDelegate:      true,
	}

	seen := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		if task.ID == "" || task.Name == "" {
			t.Errorf("task %+v has an empty ID or name", task)
		}
		if seen[task.ID] {
			t.Errorf("duplicate task ID %q", task.ID)
		}
		seen[task.ID] = true
		if task.FrequencyDays <= 0 {
			t.Errorf("task %s has non-positive frequency %d", task.ID, task.FrequencyDays)
		}
		if !validCategories[task.Category] {
			t.Errorf("task %s has unknown category %q", task.ID, task.Category)
		}
		if task.Priority.Rank() == 0 {
			t.Errorf("task %s has unknown priority %q", task.ID, task.Priority)
		}
		if !validDurations[task.Duration] {
			t.Errorf("task %s has unknown duration %q", task.ID, task.Duration)
		}
	}
}

func TestDefaultCatalogCoversEveryCategory(t *testing.T) {
	byCategory := make(map[models.Category]int)
	for _, task := range DefaultCatalog() {
		byCategory[task.Category]++
	}
	for _, cat := range []models.Category{
		models.CategoryKitchen,
		models.CategoryBathroom,
		models.CategoryLivingArea,
		models.CategoryBedroomPet,
		models.CategoryGeneral,
	} {
		if byCategory[cat] == 0 {
			t.Errorf("no default tasks in category %s", cat)
		}
	}
}

func TestDefaultCatalogHasEssentialDailies(t *testing.T) {
	// Low-energy days depend on essential work existing at short frequencies.
	found := false
	for _, task := range DefaultCatalog() {
		if task.Priority == models.PriorityEssential && task.FrequencyDays == 1 {
			found = true
			break
		}
	}
	if !found {
		t.Error("no essential daily tasks in the default catalog")
	}
}
