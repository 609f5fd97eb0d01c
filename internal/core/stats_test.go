package core

import (
	"math"
	"testing"

	"github.com/chorewheel/chorewheel/pkg/models"
)

func testAggregator(t *testing.T, tasks []models.Task) *Aggregator {
	t.Helper()
	cfg := DefaultGlobalConfig()
	catalog, err := NewCatalog(tasks)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return NewAggregator(catalog, NewScorer(cfg), cfg)
}

func ledgerWith(records ...models.CompletionRecord) *models.Ledger {
	ledger := models.NewLedger()
	for _, r := range records {
		ledger.Records[r.TaskID] = r
	}
	return ledger
}

func TestStatsEmptyLedger(t *testing.T) {
	agg := testAggregator(t, []models.Task{
		testTask("a", models.PriorityHigh, 7),
		testTask("b", models.PriorityLow, 30),
	})
	today := mustDay(t, "2026-08-30")

	st := agg.Stats(models.NewLedger(), today)

	if st.TotalTasks != 2 {
		t.Errorf("TotalTasks = %d, want 2", st.TotalTasks)
	}
	if st.TotalCompletions != 0 || st.CompletionRate != 0 {
		t.Errorf("expected zero completions and rate, got %d / %v", st.TotalCompletions, st.CompletionRate)
	}
	if st.CurrentStreak != 0 || st.LongestStreak != 0 {
		t.Errorf("expected zero streaks, got %d / %d", st.CurrentStreak, st.LongestStreak)
	}
	// Every task is overdue: never done.
	for _, fb := range st.ByFrequency {
		if fb.Overdue != fb.TotalTasks {
			t.Errorf("frequency %d: %d overdue, want %d", fb.FrequencyDays, fb.Overdue, fb.TotalTasks)
		}
	}
}

func TestStatsCompletionRate(t *testing.T) {
	agg := testAggregator(t, []models.Task{
		testTask("within", models.PriorityHigh, 7),
		testTask("overdue", models.PriorityHigh, 7),
		testTask("never", models.PriorityHigh, 7),
	})
	today := mustDay(t, "2026-08-30")

	ledger := ledgerWith(
		doneRecord("within", "2026-08-27"),  // 3 days ago, inside the window
		doneRecord("overdue", "2026-08-20"), // 10 days ago, outside
	)

	st := agg.Stats(ledger, today)
	if want := 1.0 / 3.0; math.Abs(st.CompletionRate-want) > 1e-9 {
		t.Errorf("CompletionRate = %v, want %v", st.CompletionRate, want)
	}
	if st.TotalCompletions != 2 {
		t.Errorf("TotalCompletions = %d, want 2", st.TotalCompletions)
	}
}

func TestStatsStreaks(t *testing.T) {
	agg := testAggregator(t, []models.Task{testTask("a", models.PriorityHigh, 7)})

	tests := []struct {
		name        string
		dates       []string
		today       string
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "run ending today",
			dates:       []string{"2026-08-28", "2026-08-29", "2026-08-30"},
			today:       "2026-08-30",
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "run broken before today",
			dates:       []string{"2026-08-25", "2026-08-26", "2026-08-28"},
			today:       "2026-08-30",
			wantCurrent: 0,
			wantLongest: 2,
		},
		{
			name:        "single completion today",
			dates:       []string{"2026-08-30"},
			today:       "2026-08-30",
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "longest run in the past",
			dates:       []string{"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-30"},
			today:       "2026-08-30",
			wantCurrent: 1,
			wantLongest: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := models.CompletionRecord{
				TaskID:   "a",
				LastDone: tt.dates[len(tt.dates)-1],
				Count:    len(tt.dates),
				Dates:    tt.dates,
			}
			st := agg.Stats(ledgerWith(rec), mustDay(t, tt.today))
			if st.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", st.CurrentStreak, tt.wantCurrent)
			}
			if st.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", st.LongestStreak, tt.wantLongest)
			}
		})
	}
}

func TestStatsStreakSpansTasks(t *testing.T) {
	// Completions on consecutive days across different tasks still form one
	// streak; the same day on two tasks counts once.
	agg := testAggregator(t, []models.Task{
		testTask("a", models.PriorityHigh, 7),
		testTask("b", models.PriorityHigh, 7),
	})
	today := mustDay(t, "2026-08-30")

	ledger := ledgerWith(
		models.CompletionRecord{TaskID: "a", LastDone: "2026-08-30", Count: 2, Dates: []string{"2026-08-29", "2026-08-30"}},
		models.CompletionRecord{TaskID: "b", LastDone: "2026-08-29", Count: 2, Dates: []string{"2026-08-28", "2026-08-29"}},
	)

	st := agg.Stats(ledger, today)
	if st.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", st.CurrentStreak)
	}
	if st.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", st.LongestStreak)
	}
}

func TestStatsMostCompletedAndWindow(t *testing.T) {
	agg := testAggregator(t, []models.Task{
		testTask("often", models.PriorityHigh, 7),
		testTask("rarely", models.PriorityHigh, 7),
	})
	today := mustDay(t, "2026-08-30")

	ledger := ledgerWith(
		models.CompletionRecord{TaskID: "often", LastDone: "2026-08-29", Count: 5,
			Dates: []string{"2026-05-01", "2026-08-10", "2026-08-20", "2026-08-25", "2026-08-29"}},
		models.CompletionRecord{TaskID: "rarely", LastDone: "2026-08-28", Count: 1, Dates: []string{"2026-08-28"}},
	)

	st := agg.Stats(ledger, today)
	if st.MostCompletedID != "often" || st.MostCompletedN != 5 {
		t.Errorf("most completed = %s/%d, want often/5", st.MostCompletedID, st.MostCompletedN)
	}
	// The May completion falls outside the default 30-day window.
	if st.RecentCompletions != 5 {
		t.Errorf("RecentCompletions = %d, want 5", st.RecentCompletions)
	}
}

func TestHistoryOrdering(t *testing.T) {
	agg := testAggregator(t, []models.Task{
		testTask("old", models.PriorityHigh, 7),
		testTask("recent", models.PriorityHigh, 7),
		testTask("never-b", models.PriorityHigh, 7),
		testTask("never-a", models.PriorityHigh, 7),
	})
	today := mustDay(t, "2026-08-30")

	ledger := ledgerWith(
		doneRecord("old", "2026-08-01"),
		doneRecord("recent", "2026-08-29"),
	)

	entries := agg.History(ledger, today)
	wantOrder := []string{"recent", "old", "never-a", "never-b"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantOrder))
	}
	for i, want := range wantOrder {
		if entries[i].TaskID != want {
			t.Errorf("entry %d = %s, want %s", i, entries[i].TaskID, want)
		}
	}

	if !entries[2].NeverDone || entries[2].DaysSince != 21 {
		t.Errorf("never-done entry = %+v, want NeverDone with sentinel 21", entries[2])
	}
	if entries[0].Due {
		t.Error("task done yesterday at frequency 7 should not be due")
	}
	if !entries[1].Due {
		t.Error("task done 29 days ago at frequency 7 should be due")
	}
}
