package storage

import "github.com/chorewheel/chorewheel/pkg/models"

// DefaultCatalog returns the built-in household task catalog used when no
// catalog.yaml is present. Frequencies follow the task's tier: essential
// tasks are daily, high weekly, medium biweekly or monthly, low quarterly.
func DefaultCatalog() []models.Task {
	essential := func(id, name string, cat models.Category, dur models.Duration) models.Task {
		return models.Task{ID: id, Name: name, Category: cat, Priority: models.PriorityEssential, FrequencyDays: 1, Duration: dur}
	}
	high := func(id, name string, cat models.Category, dur models.Duration) models.Task {
		return models.Task{ID: id, Name: name, Category: cat, Priority: models.PriorityHigh, FrequencyDays: 7, Duration: dur}
	}
	medium := func(id, name string, cat models.Category, freq int, dur models.Duration) models.Task {
		return models.Task{ID: id, Name: name, Category: cat, Priority: models.PriorityMedium, FrequencyDays: freq, Duration: dur}
	}
	low := func(id, name string, cat models.Category, dur models.Duration) models.Task {
		return models.Task{ID: id, Name: name, Category: cat, Priority: models.PriorityLow, FrequencyDays: 90, Duration: dur}
	}

	return []models.Task{
		// Daily essentials.
		essential("wipe-bathroom-sink", "Wipe bathroom sink", models.CategoryBathroom, models.DurationTwoMinute),
		essential("clear-entryway-clutter", "Clear clutter from hallway and entryway", models.CategoryGeneral, models.DurationTwoMinute),
		essential("sort-mail", "Quick-sort mail", models.CategoryGeneral, models.DurationTwoMinute),
		essential("wipe-bathroom-faucet", "Wipe down bathroom faucet", models.CategoryBathroom, models.DurationTwoMinute),
		essential("put-away-shoes", "Put shoes in closet or bin", models.CategoryGeneral, models.DurationTwoMinute),
		essential("unload-dishwasher", "Unload dishwasher", models.CategoryKitchen, models.DurationFiveMinute),
		essential("scoop-litter", "Scoop cat litter", models.CategoryBedroomPet, models.DurationFiveMinute),
		essential("wipe-kitchen-counters", "Clear and wipe kitchen counters", models.CategoryKitchen, models.DurationFiveMinute),
		essential("pick-up-floor-clutter", "Pick up floor clutter in main room", models.CategoryLivingArea, models.DurationFiveMinute),
		essential("take-out-trash", "Take out trash if full", models.CategoryGeneral, models.DurationFiveMinute),
		essential("vacuum-living-space", "Vacuum main living space", models.CategoryLivingArea, models.DurationFifteenMinute),
		essential("run-dishwasher", "Load dishwasher and run if full", models.CategoryKitchen, models.DurationFifteenMinute),
		essential("wipe-stovetop", "Wipe down stovetop", models.CategoryKitchen, models.DurationFifteenMinute),
		essential("empty-bathroom-trash", "Empty and wipe bathroom trash", models.CategoryBathroom, models.DurationFifteenMinute),
		essential("clean-coffee-table", "Clean coffee table", models.CategoryLivingArea, models.DurationFifteenMinute),

		// Weekly upkeep.
		high("replace-kitchen-towel", "Replace kitchen towel", models.CategoryKitchen, models.DurationTwoMinute),
		high("tidy-couch-cushions", "Tidy couch cushions and blankets", models.CategoryLivingArea, models.DurationTwoMinute),
		high("water-houseplants", "Water houseplants", models.CategoryLivingArea, models.DurationTwoMinute),
		high("wipe-door-handles", "Wipe down door handles", models.CategoryGeneral, models.DurationTwoMinute),
		high("refill-toiletries", "Refill toilet paper or soap", models.CategoryBathroom, models.DurationTwoMinute),
		high("wipe-appliances", "Wipe down appliances", models.CategoryKitchen, models.DurationFiveMinute),
		high("clean-one-mirror", "Quick clean one mirror", models.CategoryBathroom, models.DurationFiveMinute),
		high("tidy-one-shelf", "Tidy one shelf or counter", models.CategoryGeneral, models.DurationFiveMinute),
		high("clean-fridge-shelf", "Clean out one fridge shelf", models.CategoryKitchen, models.DurationFiveMinute),
		high("mop-floors", "Mop kitchen and bathroom floors", models.CategoryGeneral, models.DurationFifteenMinute),
		high("wipe-switches", "Wipe switches and doorknobs", models.CategoryGeneral, models.DurationFifteenMinute),
		high("clean-toilet-and-sink", "Clean bathroom toilet and sink thoroughly", models.CategoryBathroom, models.DurationFifteenMinute),
		high("replace-bath-towels", "Replace bath towels", models.CategoryBathroom, models.DurationFifteenMinute),

		// Biweekly touch-ups.
		medium("dust-light-fixtures", "Dust light fixtures", models.CategoryGeneral, 14, models.DurationTwoMinute),
		medium("dust-electronics", "Dust electronics", models.CategoryLivingArea, 14, models.DurationTwoMinute),
		medium("straighten-bathroom-items", "Straighten bathroom items", models.CategoryBathroom, 14, models.DurationTwoMinute),
		medium("check-cobwebs", "Spot check corners for cobwebs", models.CategoryGeneral, 14, models.DurationTwoMinute),
		medium("check-fridge-expiry", "Check expiration dates on fridge items", models.CategoryKitchen, 14, models.DurationTwoMinute),
		medium("wipe-cabinet-fronts", "Wipe cabinet fronts", models.CategoryKitchen, 14, models.DurationFiveMinute),
		medium("clean-pet-food-area", "Clean pet food area", models.CategoryBedroomPet, 14, models.DurationFiveMinute),
		medium("wipe-fridge-exterior", "Wipe fridge handle and exterior", models.CategoryKitchen, 14, models.DurationFiveMinute),
		medium("organize-one-drawer", "Organize one drawer", models.CategoryBedroomPet, 14, models.DurationFiveMinute),
		medium("wipe-baseboards-one-room", "Wipe baseboards in one room", models.CategoryGeneral, 14, models.DurationFiveMinute),

		// Monthly deeper cleans.
		medium("dust-bedroom-office", "Dust entire bedroom or office", models.CategoryBedroomPet, 30, models.DurationFifteenMinute),
		medium("clean-medicine-cabinet", "Clean out medicine cabinet", models.CategoryBathroom, 30, models.DurationFifteenMinute),
		medium("reorganize-pantry", "Reorganize pantry zone", models.CategoryKitchen, 30, models.DurationFifteenMinute),
		medium("clean-behind-microwave", "Clean behind microwave", models.CategoryKitchen, 30, models.DurationFifteenMinute),
		medium("deep-clean-appliance", "Deep clean one appliance", models.CategoryKitchen, 30, models.DurationFifteenMinute),
		medium("coffee-maker-clean-cycle", "Run clean cycle on coffee maker", models.CategoryKitchen, 30, models.DurationFifteenMinute),
		medium("dishwasher-clean-cycle", "Run clean cycle on dishwasher", models.CategoryKitchen, 30, models.DurationFifteenMinute),
		medium("dust-ceiling-fans", "Dust ceiling fans and light fixtures", models.CategoryGeneral, 30, models.DurationFifteenMinute),
		medium("clean-baseboards", "Clean baseboards and molding", models.CategoryGeneral, 30, models.DurationFifteenMinute),
		medium("vacuum-upholstery", "Vacuum upholstered furniture", models.CategoryLivingArea, 30, models.DurationFifteenMinute),
		medium("clean-sink-drain", "Clean kitchen sink drain", models.CategoryKitchen, 30, models.DurationFifteenMinute),
		medium("launder-shower-curtain", "Launder shower curtain and liner", models.CategoryBathroom, 30, models.DurationFifteenMinute),

		// Quarterly projects.
		low("vacuum-under-couch", "Vacuum under couch", models.CategoryLivingArea, models.DurationFifteenMinute),
		low("dust-rotate-books", "Dust and rotate books", models.CategoryLivingArea, models.DurationFifteenMinute),
		low("wipe-window-tracks", "Wipe window tracks", models.CategoryGeneral, models.DurationFifteenMinute),
		low("washing-machine-filter", "Clean washing machine filter", models.CategoryGeneral, models.DurationFifteenMinute),
		low("check-fire-alarms", "Check fire alarm batteries", models.CategoryGeneral, models.DurationFifteenMinute),
		low("rotate-mattress", "Rotate mattress", models.CategoryBedroomPet, models.DurationFifteenMinute),
		low("wash-trash-bins", "Wash trashcans and recycling bins", models.CategoryGeneral, models.DurationFifteenMinute),
		low("declutter-storage", "Declutter storage spaces", models.CategoryGeneral, models.DurationFifteenMinute),
		low("check-water-filter", "Check water filter and softener", models.CategoryKitchen, models.DurationFifteenMinute),
		low("wash-curtains", "Wash curtains or blinds", models.CategoryLivingArea, models.DurationFifteenMinute),
		low("clean-behind-appliances", "Clean behind large appliances", models.CategoryKitchen, models.DurationDelegate),
		low("organize-storage-closet", "Organize storage closet", models.CategoryGeneral, models.DurationDelegate),
		low("sort-donation-bin", "Sort donation bin", models.CategoryGeneral, models.DurationDelegate),
	}
}
