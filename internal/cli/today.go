package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/chorewheel/chorewheel/internal/core"
	"github.com/chorewheel/chorewheel/pkg/models"
	"github.com/spf13/cobra"
)

var (
	todayEnergy string
	todayDate   string
	todayJSON   bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show recommended cleaning tasks for today",
	Long: `Show the recommended cleaning tasks for a day, ordered by urgency.

The list is filtered and capped by your energy level:
  low       essential tasks only, at most 3
  moderate  everything except low-priority tasks, at most 6
  good      the full eligible list, uncapped

This week's focus category is boosted, so chores in the focus area float
toward the top. Recommendations for a day are cached and stay stable until
a task is completed or the day is reset.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		energy, err := parseEnergyFlag(todayEnergy)
		if err != nil {
			return err
		}
		day, err := parseDateFlag(todayDate)
		if err != nil {
			return err
		}

		plan, err := Scheduler.PlanFor(day)
		if err != nil {
			return fmt.Errorf("planning day: %w", err)
		}
		recs := plan.ByEnergy[energy]

		if todayJSON {
			out := struct {
				Date            string                  `json:"date"`
				WeekNumber      int                     `json:"week_number"`
				FocusCategory   models.Category         `json:"focus_category"`
				Energy          models.EnergyLevel      `json:"energy"`
				Recommendations []models.Recommendation `json:"recommendations"`
			}{plan.Date, plan.WeekNumber, plan.FocusCategory, energy, recs}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting plan as JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Plan for %s (week %d, focus: %s, energy: %s)\n\n",
			plan.Date, plan.WeekNumber, plan.FocusCategory, energy)

		if len(recs) == 0 {
			fmt.Println("  Nothing to recommend. Everything is on schedule.")
			return nil
		}

		for i, r := range recs {
			focusMark := " "
			if r.InFocus {
				focusMark = "*"
			}
			fmt.Printf("  %2d. %s %-38s %-9s %-9s %6.2f %s\n",
				i+1, focusMark, r.Name, r.Priority, r.Duration, r.Score, core.Band(r.Score))
		}
		fmt.Println("\n  * = this week's focus category")

		return nil
	},
}

// parseEnergyFlag validates an --energy value.
func parseEnergyFlag(raw string) (models.EnergyLevel, error) {
	switch models.EnergyLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case models.EnergyLow:
		return models.EnergyLow, nil
	case models.EnergyModerate:
		return models.EnergyModerate, nil
	case models.EnergyGood:
		return models.EnergyGood, nil
	}
	return "", fmt.Errorf("invalid energy %q (use low, moderate, or good)", raw)
}

// parseDateFlag parses a --date value, defaulting to today.
func parseDateFlag(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return core.Day(time.Now().UTC()), nil
	}
	d, err := time.Parse(models.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", raw)
	}
	return d, nil
}

func init() {
	todayCmd.Flags().StringVarP(&todayEnergy, "energy", "e", "moderate", "energy level: low, moderate, or good")
	todayCmd.Flags().StringVar(&todayDate, "date", "", "day to plan for (YYYY-MM-DD, default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(todayCmd)
}
