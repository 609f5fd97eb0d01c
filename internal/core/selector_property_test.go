package core

import (
	"testing"

	"github.com/chorewheel/chorewheel/pkg/models"
	"pgregory.net/rapid"
)

func energyGen() *rapid.Generator[models.EnergyLevel] {
	return rapid.SampledFrom([]models.EnergyLevel{
		models.EnergyLow,
		models.EnergyModerate,
		models.EnergyGood,
	})
}

func scoredTasksGen(rt *rapid.T) []models.ScoredTask {
	n := rapid.IntRange(0, 40).Draw(rt, "n")
	seen := make(map[string]bool)
	var scored []models.ScoredTask
	for i := 0; i < n; i++ {
		task := testTaskGen(rt)
		if seen[task.ID] {
			continue
		}
		seen[task.ID] = true
		scored = append(scored, models.ScoredTask{
			Task:    task,
			Score:   rapid.Float64Range(0, 20).Draw(rt, "score"),
			InFocus: rapid.Bool().Draw(rt, "inFocus"),
		})
	}
	return scored
}

// Feature: chorewheel, Property 5: Recommendation Ordering
// Recommendations always come back in non-increasing score order.
func TestProperty_RecommendationsSorted(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sel := NewSelector(DefaultGlobalConfig())
		recs := sel.Recommend(scoredTasksGen(rt), energyGen().Draw(rt, "energy"))

		for i := 1; i < len(recs); i++ {
			if recs[i].Score > recs[i-1].Score {
				rt.Fatalf("recommendation %d (%v) outscores its predecessor (%v)",
					i, recs[i].Score, recs[i-1].Score)
			}
		}
	})
}

// Feature: chorewheel, Property 6: Energy Cap Enforcement
// The list never exceeds the configured cap for the energy level.
func TestProperty_EnergyCapRespected(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := DefaultGlobalConfig()
		sel := NewSelector(cfg)
		energy := energyGen().Draw(rt, "energy")

		recs := sel.Recommend(scoredTasksGen(rt), energy)
		if limit := cfg.EnergyCaps[energy]; limit > 0 && len(recs) > limit {
			rt.Fatalf("%d recommendations exceed the %s cap of %d", len(recs), energy, limit)
		}
	})
}

// Feature: chorewheel, Property 7: Energy Gate Soundness
// Every recommended task clears the priority gate for its energy level, and
// nothing outside essential appears with a zero score.
func TestProperty_EnergyGateSound(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sel := NewSelector(DefaultGlobalConfig())
		energy := energyGen().Draw(rt, "energy")

		for _, r := range sel.Recommend(scoredTasksGen(rt), energy) {
			if !eligible(r.Priority, energy) {
				rt.Fatalf("task %s (%s) recommended at %s energy", r.TaskID, r.Priority, energy)
			}
			if r.Score <= 0 && r.Priority != models.PriorityEssential {
				rt.Fatalf("zero-score non-essential task %s recommended", r.TaskID)
			}
		}
	})
}

// Feature: chorewheel, Property 8: Selector Purity
// Recommending never mutates the scored input.
func TestProperty_SelectorDoesNotMutateInput(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sel := NewSelector(DefaultGlobalConfig())
		scored := scoredTasksGen(rt)

		before := make([]models.ScoredTask, len(scored))
		copy(before, scored)

		sel.Recommend(scored, energyGen().Draw(rt, "energy"))

		for i := range before {
			if scored[i] != before[i] {
				rt.Fatalf("scored task %d changed from %+v to %+v", i, before[i], scored[i])
			}
		}
	})
}
