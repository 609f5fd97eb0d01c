package core

import (
	"time"

	"github.com/chorewheel/chorewheel/pkg/models"
)

// Urgency display bands. A score above BandHigh reads as "do this now"; the
// thresholds match how the overdue factor behaves: a score of 1 per weight
// unit means exactly one frequency window has elapsed.
const (
	BandHigh   = 3.0
	BandMedium = 1.5
)

// Scorer computes urgency scores from catalog attributes and ledger state.
// It is pure: identical inputs always produce identical scores, and the
// current day is always passed in.
type Scorer struct {
	cfg *models.GlobalConfig
}

// NewScorer creates a Scorer using the given tuning configuration.
func NewScorer(cfg *models.GlobalConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// DaysSince returns the whole days between lastDone and today. Tasks never
// completed (or with an unparseable date, which the storage layer should
// already have dropped) get a sentinel of FrequencyDays x NeverDoneMultiplier
// so they are never under-prioritized relative to recently-done work.
func (s *Scorer) DaysSince(task models.Task, rec models.CompletionRecord, today time.Time) int {
	last, ok := rec.LastDoneDate()
	if !ok {
		return int(float64(task.FrequencyDays) * s.cfg.NeverDoneMultiplier)
	}
	days := int(today.Sub(last).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// OverdueFactor is days-since divided by the task's expected frequency,
// clamped at zero. A factor of 1 means the task is exactly one frequency
// window overdue; 0 means it was completed today.
func (s *Scorer) OverdueFactor(task models.Task, rec models.CompletionRecord, today time.Time) float64 {
	days := s.DaysSince(task, rec, today)
	if days <= 0 {
		return 0
	}
	return float64(days) / float64(task.FrequencyDays)
}

// Score computes the urgency score for one task: the priority weight times
// the overdue factor. Scores are non-negative and monotonically
// non-decreasing in days since completion.
func (s *Scorer) Score(task models.Task, rec models.CompletionRecord, today time.Time) float64 {
	return s.priorityWeight(task.Priority) * s.OverdueFactor(task, rec, today)
}

// ScoreAll scores every catalog task against the ledger for one day, marking
// tasks in the given focus category. The returned slice is ordered by catalog
// ID; ranking is the selector's job.
func (s *Scorer) ScoreAll(catalog *Catalog, ledger *models.Ledger, today time.Time, focus models.Category) []models.ScoredTask {
	tasks := catalog.Tasks()
	scored := make([]models.ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		scored = append(scored, models.ScoredTask{
			Task:    t,
			Score:   s.Score(t, ledger.Record(t.ID), today),
			InFocus: t.Category == focus,
		})
	}
	return scored
}

// Due reports whether the task's frequency window has fully elapsed.
func (s *Scorer) Due(task models.Task, rec models.CompletionRecord, today time.Time) bool {
	return s.DaysSince(task, rec, today) >= task.FrequencyDays
}

// Band maps a score to its display band: "high", "medium", or "low".
func Band(score float64) string {
	switch {
	case score > BandHigh:
		return "high"
	case score > BandMedium:
		return "medium"
	default:
		return "low"
	}
}

func (s *Scorer) priorityWeight(p models.Priority) float64 {
	if w, ok := s.cfg.PriorityWeights[p]; ok {
		return w
	}
	return 1
}
