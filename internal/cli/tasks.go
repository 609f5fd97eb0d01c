package cli

import (
	"fmt"

	"github.com/chorewheel/chorewheel/pkg/models"
	"github.com/spf13/cobra"
)

var tasksCategory string

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the task catalog grouped by category",
	Long: `List every task in the catalog with its priority, frequency, and
expected duration, grouped by category.

Optionally filter to a single category using --category
(e.g. --category kitchen).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		tasks := Scheduler.Catalog().Tasks()

		grouped := make(map[models.Category][]models.Task)
		for _, t := range tasks {
			grouped[t.Category] = append(grouped[t.Category], t)
		}

		order := []models.Category{
			models.CategoryKitchen,
			models.CategoryBathroom,
			models.CategoryLivingArea,
			models.CategoryBedroomPet,
			models.CategoryGeneral,
		}

		if tasksCategory != "" {
			cat := models.Category(tasksCategory)
			if _, ok := grouped[cat]; !ok {
				return fmt.Errorf("no tasks in category %q", tasksCategory)
			}
			order = []models.Category{cat}
		}

		for _, cat := range order {
			group := grouped[cat]
			if len(group) == 0 {
				continue
			}
			fmt.Printf("%s (%d)\n", cat, len(group))
			for _, t := range group {
				fmt.Printf("  %-32s %-10s every %3d day(s)  %s\n",
					t.ID, t.Priority, t.FrequencyDays, t.Duration)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	tasksCmd.Flags().StringVar(&tasksCategory, "category", "", "show only one category")
	rootCmd.AddCommand(tasksCmd)
}
