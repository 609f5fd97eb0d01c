package core

import (
	"time"

	"github.com/chorewheel/chorewheel/pkg/models"
)

// DefaultRotation is the focus-area sequence cycled week over week.
var DefaultRotation = []models.Category{
	models.CategoryKitchen,
	models.CategoryBathroom,
	models.CategoryLivingArea,
	models.CategoryBedroomPet,
}

// WeekNumber returns the ISO-8601 week of the given day. ISO weeks start on
// Monday and week 1 contains the year's first Thursday; this is the one
// definition of "week" used anywhere in the engine.
func WeekNumber(day time.Time) int {
	_, week := day.ISOWeek()
	return week
}

// FocusCategory maps a week number onto the rotation sequence. Week 1 is the
// first entry, matching the 1-based ISO week numbering. The function is total
// over all non-negative week numbers and periodic with the sequence length.
func FocusCategory(rotation []models.Category, week int) models.Category {
	if len(rotation) == 0 {
		rotation = DefaultRotation
	}
	idx := (week - 1) % len(rotation)
	if idx < 0 {
		idx += len(rotation)
	}
	return rotation[idx]
}

// FocusForDay is a convenience composing WeekNumber and FocusCategory.
func FocusForDay(rotation []models.Category, day time.Time) models.Category {
	return FocusCategory(rotation, WeekNumber(day))
}
