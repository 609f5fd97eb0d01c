package core

import (
	"sort"
	"time"

	"github.com/chorewheel/chorewheel/pkg/models"
)

// Aggregator derives completion-rate and streak metrics from the ledger.
// It only reads: nothing here mutates a record.
type Aggregator struct {
	catalog *Catalog
	scorer  *Scorer
	cfg     *models.GlobalConfig
}

// NewAggregator creates an Aggregator over the given catalog.
func NewAggregator(catalog *Catalog, scorer *Scorer, cfg *models.GlobalConfig) *Aggregator {
	return &Aggregator{catalog: catalog, scorer: scorer, cfg: cfg}
}

// Stats computes ledger statistics as of the given day.
//
// The completion rate is the fraction of catalog tasks whose last completion
// falls inside their own frequency window: a weekly task done four days ago
// counts, one done nine days ago (or never) does not. Streaks count
// consecutive calendar days with at least one completion event anywhere in
// the ledger; the current streak must reach the as-of day itself.
func (a *Aggregator) Stats(ledger *models.Ledger, today time.Time) models.Stats {
	st := models.Stats{
		AsOf:             today.Format(models.DateFormat),
		TotalTasks:       a.catalog.Len(),
		RecentWindowDays: a.cfg.StatsWindowDays,
	}

	freqBuckets := make(map[int]*models.FrequencyStats)
	windowStart := today.AddDate(0, 0, -a.cfg.StatsWindowDays)
	inWindow := 0
	within := 0

	for _, task := range a.catalog.Tasks() {
		rec := ledger.Record(task.ID)
		st.TotalCompletions += rec.Count
		if rec.Count > st.MostCompletedN {
			st.MostCompletedN = rec.Count
			st.MostCompletedID = task.ID
		}

		fb, ok := freqBuckets[task.FrequencyDays]
		if !ok {
			fb = &models.FrequencyStats{FrequencyDays: task.FrequencyDays}
			freqBuckets[task.FrequencyDays] = fb
		}
		fb.TotalTasks++
		if rec.Count > 0 {
			fb.EverCompleted++
		}
		if a.scorer.Due(task, rec, today) {
			fb.Overdue++
		} else if _, done := rec.LastDoneDate(); done {
			within++
		}

		for _, ds := range rec.Dates {
			d, err := time.Parse(models.DateFormat, ds)
			if err != nil {
				continue
			}
			if !d.Before(windowStart) && !d.After(today) {
				inWindow++
			}
		}
	}

	if st.TotalTasks > 0 {
		st.CompletionRate = float64(within) / float64(st.TotalTasks)
	}
	st.RecentCompletions = inWindow
	st.CurrentStreak, st.LongestStreak = a.streaks(ledger, today)

	for _, fb := range freqBuckets {
		st.ByFrequency = append(st.ByFrequency, *fb)
	}
	sort.Slice(st.ByFrequency, func(i, j int) bool {
		return st.ByFrequency[i].FrequencyDays < st.ByFrequency[j].FrequencyDays
	})

	return st
}

// History returns one row per catalog task describing its completion state
// as of the given day, most recently completed first (never-done tasks last,
// ordered by ID).
func (a *Aggregator) History(ledger *models.Ledger, today time.Time) []models.HistoryEntry {
	var entries []models.HistoryEntry
	for _, task := range a.catalog.Tasks() {
		rec := ledger.Record(task.ID)
		_, done := rec.LastDoneDate()
		entries = append(entries, models.HistoryEntry{
			TaskID:        task.ID,
			Name:          task.Name,
			Priority:      task.Priority,
			FrequencyDays: task.FrequencyDays,
			LastDone:      rec.LastDone,
			DaysSince:     a.scorer.DaysSince(task, rec, today),
			NeverDone:     !done,
			Count:         rec.Count,
			Due:           a.scorer.Due(task, rec, today),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].NeverDone != entries[j].NeverDone {
			return !entries[i].NeverDone
		}
		if entries[i].LastDone != entries[j].LastDone {
			return entries[i].LastDone > entries[j].LastDone
		}
		return entries[i].TaskID < entries[j].TaskID
	})
	return entries
}

// streaks scans every recorded completion day in chronological order and
// returns the run ending on today (current) and the longest run overall.
func (a *Aggregator) streaks(ledger *models.Ledger, today time.Time) (current, longest int) {
	seen := make(map[string]struct{})
	for _, rec := range ledger.Records {
		for _, ds := range rec.Dates {
			seen[ds] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return 0, 0
	}

	days := make([]time.Time, 0, len(seen))
	for ds := range seen {
		d, err := time.Parse(models.DateFormat, ds)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	run := 0
	for i, d := range days {
		if i == 0 || int(d.Sub(days[i-1]).Hours()/24) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		if d.Equal(today) {
			current = run
		}
	}
	return current, longest
}
