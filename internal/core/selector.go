package core

import (
	"sort"

	"github.com/chorewheel/chorewheel/pkg/models"
)

// Selector turns a scored task list into an ordered, capped recommendation
// list for one energy level. It never mutates the ledger.
type Selector struct {
	cfg *models.GlobalConfig
}

// NewSelector creates a Selector using the given tuning configuration.
func NewSelector(cfg *models.GlobalConfig) *Selector {
	return &Selector{cfg: cfg}
}

// eligible reports whether a task's priority tier clears the energy gate.
// Low energy admits only Essential work; Moderate admits everything except
// Low-priority tasks; Good admits the whole catalog.
func eligible(p models.Priority, energy models.EnergyLevel) bool {
	switch energy {
	case models.EnergyLow:
		return p == models.PriorityEssential
	case models.EnergyModerate:
		return p != models.PriorityLow
	default:
		return true
	}
}

// Recommend filters scored tasks by the energy gate, applies the focus boost,
// orders by boosted score (ties broken by priority tier, then task ID), and
// truncates to the energy level's cap. Essential tasks stay in the list even
// at zero urgency; other tiers drop out once their score reaches zero, so a
// freshly-cleaned house yields a short or empty list.
func (sel *Selector) Recommend(scored []models.ScoredTask, energy models.EnergyLevel) []models.Recommendation {
	boost := sel.cfg.FocusBoost
	if boost <= 1 {
		boost = 1
	}

	type ranked struct {
		st      models.ScoredTask
		boosted float64
	}
	var picks []ranked
	for _, st := range scored {
		if !eligible(st.Task.Priority, energy) {
			continue
		}
		if st.Score <= 0 && st.Task.Priority != models.PriorityEssential {
			continue
		}
		b := st.Score
		if st.InFocus {
			b *= boost
		}
		picks = append(picks, ranked{st: st, boosted: b})
	}

	sort.SliceStable(picks, func(i, j int) bool {
		if picks[i].boosted != picks[j].boosted {
			return picks[i].boosted > picks[j].boosted
		}
		ri, rj := picks[i].st.Task.Priority.Rank(), picks[j].st.Task.Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return picks[i].st.Task.ID < picks[j].st.Task.ID
	})

	if limit, ok := sel.cfg.EnergyCaps[energy]; ok && limit > 0 && len(picks) > limit {
		picks = picks[:limit]
	}

	recs := make([]models.Recommendation, 0, len(picks))
	for _, p := range picks {
		recs = append(recs, models.Recommendation{
			TaskID:   p.st.Task.ID,
			Name:     p.st.Task.Name,
			Category: p.st.Task.Category,
			Priority: p.st.Task.Priority,
			Duration: p.st.Task.Duration,
			Score:    p.boosted,
			InFocus:  p.st.InFocus,
		})
	}
	return recs
}
