package core

import (
	"fmt"
	"time"

	"github.com/chorewheel/chorewheel/pkg/models"
)

// LedgerStore is the subset of storage.LedgerManager the scheduler needs.
// Defining it here keeps core independent of the storage package.
type LedgerStore interface {
	Load() (*models.Ledger, []CorruptLedgerEntry, error)
	Save(ledger *models.Ledger) error
}

// PlanStore is the subset of storage.PlanManager the scheduler needs.
type PlanStore interface {
	Get(date string) (*models.DayPlan, bool, error)
	Put(plan models.DayPlan) error
	Delete(date string) error
}

// EventLogger records scheduler events for observability. May be nil.
type EventLogger interface {
	LogEvent(eventType, message string, data map[string]any)
}

// Scheduler is the session-facing facade over the engine: it owns the load/
// mutate/save cycle around the ledger and the day-plan cache, and delegates
// all scoring and selection to the pure pieces. One Scheduler serves one
// single-writer session; there is no locking because there is no sharing.
type Scheduler struct {
	catalog  *Catalog
	cfg      *models.GlobalConfig
	scorer   *Scorer
	selector *Selector
	agg      *Aggregator
	ledgers  LedgerStore
	plans    PlanStore
	events   EventLogger
}

// NewScheduler wires a Scheduler from its dependencies. events may be nil.
func NewScheduler(catalog *Catalog, cfg *models.GlobalConfig, ledgers LedgerStore, plans PlanStore, events EventLogger) *Scheduler {
	scorer := NewScorer(cfg)
	return &Scheduler{
		catalog:  catalog,
		cfg:      cfg,
		scorer:   scorer,
		selector: NewSelector(cfg),
		agg:      NewAggregator(catalog, scorer, cfg),
		ledgers:  ledgers,
		plans:    plans,
		events:   events,
	}
}

// Catalog exposes the validated catalog for read-only use by the
// presentation layer.
func (s *Scheduler) Catalog() *Catalog {
	return s.catalog
}

// Day normalizes a time to its calendar day at midnight UTC. All date
// arithmetic in the engine runs on normalized days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputePlan derives the full day plan for a date from nothing but the
// catalog, ledger, and tuning policy. It is the idempotent path: calling it
// any number of times with the same inputs yields the same plan, whether or
// not a cached copy exists.
func (s *Scheduler) ComputePlan(ledger *models.Ledger, day time.Time) models.DayPlan {
	day = Day(day)
	week := WeekNumber(day)
	focus := FocusCategory(s.cfg.Rotation, week)
	scored := s.scorer.ScoreAll(s.catalog, ledger, day, focus)

	plan := models.DayPlan{
		Date:          day.Format(models.DateFormat),
		WeekNumber:    week,
		FocusCategory: focus,
		ByEnergy:      make(map[models.EnergyLevel][]models.Recommendation, 3),
	}
	for _, energy := range []models.EnergyLevel{models.EnergyLow, models.EnergyModerate, models.EnergyGood} {
		plan.ByEnergy[energy] = s.selector.Recommend(scored, energy)
	}
	return plan
}

// Recommend returns the ordered recommendation list for a day and energy
// level. A cached plan for the day is used when present; otherwise the plan
// is computed from the ledger and cached for the presentation layer.
func (s *Scheduler) Recommend(day time.Time, energy models.EnergyLevel) ([]models.Recommendation, error) {
	day = Day(day)
	dateStr := day.Format(models.DateFormat)

	if cached, ok, err := s.plans.Get(dateStr); err == nil && ok {
		if recs, have := cached.ByEnergy[energy]; have {
			return recs, nil
		}
	}

	plan, err := s.regeneratePlan(day)
	if err != nil {
		return nil, err
	}
	return plan.ByEnergy[energy], nil
}

// PlanFor returns the full day plan for a date, computing and caching it if
// needed.
func (s *Scheduler) PlanFor(day time.Time) (*models.DayPlan, error) {
	day = Day(day)
	if cached, ok, err := s.plans.Get(day.Format(models.DateFormat)); err == nil && ok {
		return cached, nil
	}
	return s.regeneratePlan(day)
}

// ResetDay discards any cached plan for the date and computes a fresh one.
func (s *Scheduler) ResetDay(day time.Time) (*models.DayPlan, error) {
	day = Day(day)
	if err := s.plans.Delete(day.Format(models.DateFormat)); err != nil {
		return nil, fmt.Errorf("resetting day plan: %w", err)
	}
	plan, err := s.regeneratePlan(day)
	if err != nil {
		return nil, err
	}
	s.logEvent("plan.reset", "day plan reset", map[string]any{"date": plan.Date})
	return plan, nil
}

// MarkComplete records that a task was completed on the given day. This is
// the only way the ledger changes. The task must exist in the catalog; on
// *UnknownTaskError the ledger is left untouched. The day's cached plan is
// dropped so the next recommendation pass sees the new state.
func (s *Scheduler) MarkComplete(taskID string, day time.Time) error {
	if _, ok := s.catalog.Task(taskID); !ok {
		return &UnknownTaskError{TaskID: taskID}
	}
	day = Day(day)
	dateStr := day.Format(models.DateFormat)

	ledger, _, err := s.ledgers.Load()
	if err != nil {
		return fmt.Errorf("marking %s complete: loading ledger: %w", taskID, err)
	}

	rec := ledger.Record(taskID)
	rec.LastDone = dateStr
	rec.Count++
	if n := len(rec.Dates); n == 0 || rec.Dates[n-1] != dateStr {
		rec.Dates = append(rec.Dates, dateStr)
	}
	ledger.Records[taskID] = rec

	if err := s.ledgers.Save(ledger); err != nil {
		return fmt.Errorf("marking %s complete: saving ledger: %w", taskID, err)
	}
	_ = s.plans.Delete(dateStr) // Cache only; recomputed on next use.

	s.logEvent("task.completed", "task marked complete", map[string]any{
		"task_id": taskID,
		"date":    dateStr,
	})
	return nil
}

// ResetTask nulls a task's completion record, returning it to the
// never-completed state. The record itself is kept so the reset is visible
// in the ledger file.
func (s *Scheduler) ResetTask(taskID string) error {
	if _, ok := s.catalog.Task(taskID); !ok {
		return &UnknownTaskError{TaskID: taskID}
	}
	ledger, _, err := s.ledgers.Load()
	if err != nil {
		return fmt.Errorf("resetting %s: loading ledger: %w", taskID, err)
	}
	ledger.Records[taskID] = models.CompletionRecord{TaskID: taskID}
	if err := s.ledgers.Save(ledger); err != nil {
		return fmt.Errorf("resetting %s: saving ledger: %w", taskID, err)
	}
	s.logEvent("ledger.task_reset", "task completion record reset", map[string]any{"task_id": taskID})
	return nil
}

// Stats computes ledger statistics as of a day.
func (s *Scheduler) Stats(day time.Time) (models.Stats, error) {
	ledger, _, err := s.ledgers.Load()
	if err != nil {
		return models.Stats{}, fmt.Errorf("computing stats: loading ledger: %w", err)
	}
	return s.agg.Stats(ledger, Day(day)), nil
}

// History returns the per-task completion history as of a day.
func (s *Scheduler) History(day time.Time) ([]models.HistoryEntry, error) {
	ledger, _, err := s.ledgers.Load()
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return s.agg.History(ledger, Day(day)), nil
}

// LastCompleted returns a task's recorded last-completion date, or false if
// the task has never been completed. Unknown IDs yield *UnknownTaskError.
func (s *Scheduler) LastCompleted(taskID string) (time.Time, bool, error) {
	if _, ok := s.catalog.Task(taskID); !ok {
		return time.Time{}, false, &UnknownTaskError{TaskID: taskID}
	}
	ledger, _, err := s.ledgers.Load()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("looking up %s: loading ledger: %w", taskID, err)
	}
	d, ok := ledger.Record(taskID).LastDoneDate()
	return d, ok, nil
}

func (s *Scheduler) regeneratePlan(day time.Time) (*models.DayPlan, error) {
	ledger, dropped, err := s.ledgers.Load()
	if err != nil {
		return nil, fmt.Errorf("generating plan: loading ledger: %w", err)
	}
	for _, d := range dropped {
		s.logEvent("ledger.entry_dropped", d.String(), map[string]any{"task_id": d.TaskID})
	}

	plan := s.ComputePlan(ledger, day)
	if err := s.plans.Put(plan); err != nil {
		// Cache write failure is not fatal: the plan is still valid.
		s.logEvent("plan.cache_failed", err.Error(), map[string]any{"date": plan.Date})
	} else {
		s.logEvent("plan.generated", "day plan generated", map[string]any{
			"date":  plan.Date,
			"focus": string(plan.FocusCategory),
		})
	}
	return &plan, nil
}

func (s *Scheduler) logEvent(eventType, message string, data map[string]any) {
	if s.events != nil {
		s.events.LogEvent(eventType, message, data)
	}
}
