package core

import (
	"math"
	"testing"
	"time"

	"github.com/chorewheel/chorewheel/pkg/models"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func testTask(id string, priority models.Priority, freq int) models.Task {
	return models.Task{
		ID:            id,
		Name:          id,
		Category:      models.CategoryGeneral,
		Priority:      priority,
		FrequencyDays: freq,
		Duration:      models.DurationFiveMinute,
	}
}

func doneRecord(taskID, lastDone string) models.CompletionRecord {
	return models.CompletionRecord{TaskID: taskID, LastDone: lastDone, Count: 1, Dates: []string{lastDone}}
}

func TestDaysSince(t *testing.T) {
	scorer := NewScorer(DefaultGlobalConfig())
	today := mustDay(t, "2026-08-30")

	tests := []struct {
		name string
		task models.Task
		rec  models.CompletionRecord
		want int
	}{
		{
			name: "completed five days ago",
			task: testTask("a", models.PriorityHigh, 7),
			rec:  doneRecord("a", "2026-08-25"),
			want: 5,
		},
		{
			name: "completed today",
			task: testTask("a", models.PriorityHigh, 7),
			rec:  doneRecord("a", "2026-08-30"),
			want: 0,
		},
		{
			name: "future date clamps to zero",
			task: testTask("a", models.PriorityHigh, 7),
			rec:  doneRecord("a", "2026-09-05"),
			want: 0,
		},
		{
			name: "never done uses frequency sentinel",
			task: testTask("a", models.PriorityHigh, 7),
			rec:  models.CompletionRecord{TaskID: "a"},
			want: 21, // 7 x 3
		},
		{
			name: "never done daily task",
			task: testTask("a", models.PriorityEssential, 1),
			rec:  models.CompletionRecord{TaskID: "a"},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.DaysSince(tt.task, tt.rec, today)
			if got != tt.want {
				t.Errorf("DaysSince() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverdueFactor(t *testing.T) {
	scorer := NewScorer(DefaultGlobalConfig())
	today := mustDay(t, "2026-08-30")

	tests := []struct {
		name string
		task models.Task
		rec  models.CompletionRecord
		want float64
	}{
		{
			name: "exactly one window elapsed",
			task: testTask("a", models.PriorityHigh, 7),
			rec:  doneRecord("a", "2026-08-23"),
			want: 1.0,
		},
		{
			name: "half a window elapsed",
			task: testTask("a", models.PriorityHigh, 14),
			rec:  doneRecord("a", "2026-08-23"),
			want: 0.5,
		},
		{
			name: "completed today yields zero",
			task: testTask("a", models.PriorityHigh, 7),
			rec:  doneRecord("a", "2026-08-30"),
			want: 0,
		},
		{
			name: "never done yields the multiplier",
			task: testTask("a", models.PriorityHigh, 7),
			rec:  models.CompletionRecord{TaskID: "a"},
			want: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.OverdueFactor(tt.task, tt.rec, today)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("OverdueFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	scorer := NewScorer(DefaultGlobalConfig())
	today := mustDay(t, "2026-08-30")

	// A never-done essential daily task scores weight 4 x factor 3.
	a := testTask("a", models.PriorityEssential, 1)
	if got := scorer.Score(a, models.CompletionRecord{TaskID: "a"}, today); math.Abs(got-12.0) > 1e-9 {
		t.Errorf("Score(never-done essential daily) = %v, want 12", got)
	}

	// A low-priority monthly task done 29 days ago scores 1 x 29/30.
	b := testTask("b", models.PriorityLow, 30)
	want := 29.0 / 30.0
	if got := scorer.Score(b, doneRecord("b", "2026-08-01"), today); math.Abs(got-want) > 1e-9 {
		t.Errorf("Score(low monthly, 29 days) = %v, want %v", got, want)
	}

	// Priority scales the same overdue factor.
	rec := doneRecord("x", "2026-08-23")
	weekly := func(p models.Priority) float64 {
		return scorer.Score(testTask("x", p, 7), rec, today)
	}
	if !(weekly(models.PriorityEssential) > weekly(models.PriorityHigh) &&
		weekly(models.PriorityHigh) > weekly(models.PriorityMedium) &&
		weekly(models.PriorityMedium) > weekly(models.PriorityLow)) {
		t.Error("scores do not increase with priority tier at equal overdue factor")
	}
}

func TestDue(t *testing.T) {
	scorer := NewScorer(DefaultGlobalConfig())
	today := mustDay(t, "2026-08-30")
	task := testTask("a", models.PriorityMedium, 7)

	if scorer.Due(task, doneRecord("a", "2026-08-25"), today) {
		t.Error("task done 5 days ago should not be due at frequency 7")
	}
	if !scorer.Due(task, doneRecord("a", "2026-08-23"), today) {
		t.Error("task done 7 days ago should be due at frequency 7")
	}
	if !scorer.Due(task, models.CompletionRecord{TaskID: "a"}, today) {
		t.Error("never-done task should always be due")
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "low"},
		{1.5, "low"},
		{1.6, "medium"},
		{3.0, "medium"},
		{3.1, "high"},
		{12, "high"},
	}
	for _, tt := range tests {
		if got := Band(tt.score); got != tt.want {
			t.Errorf("Band(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreAllMarksFocus(t *testing.T) {
	cfg := DefaultGlobalConfig()
	scorer := NewScorer(cfg)
	today := mustDay(t, "2026-08-30")

	kitchen := testTask("k", models.PriorityHigh, 7)
	kitchen.Category = models.CategoryKitchen
	bathroom := testTask("b", models.PriorityHigh, 7)
	bathroom.Category = models.CategoryBathroom

	catalog, err := NewCatalog([]models.Task{kitchen, bathroom})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	scored := scorer.ScoreAll(catalog, models.NewLedger(), today, models.CategoryKitchen)
	if len(scored) != 2 {
		t.Fatalf("expected 2 scored tasks, got %d", len(scored))
	}
	for _, st := range scored {
		wantFocus := st.Task.Category == models.CategoryKitchen
		if st.InFocus != wantFocus {
			t.Errorf("task %s InFocus = %v, want %v", st.Task.ID, st.InFocus, wantFocus)
		}
	}
}
