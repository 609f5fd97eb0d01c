package observability

import (
	"fmt"
	"time"
)

// Metrics holds operational counters derived from the event log.
type Metrics struct {
	TasksCompleted    int            `json:"tasks_completed"`
	PlansGenerated    int            `json:"plans_generated"`
	PlansReset        int            `json:"plans_reset"`
	TasksReset        int            `json:"tasks_reset"`
	EntriesDropped    int            `json:"entries_dropped"`
	CompletionsByTask map[string]int `json:"completions_by_task,omitempty"`
	EventCount        int            `json:"event_count"`
	OldestEvent       *time.Time     `json:"oldest_event,omitempty"`
	NewestEvent       *time.Time     `json:"newest_event,omitempty"`
}

// MetricsCalculator derives metrics from the event log.
type MetricsCalculator interface {
	Calculate(since time.Time) (*Metrics, error)
}

type metricsCalculator struct {
	eventLog EventLog
}

// NewMetricsCalculator creates a MetricsCalculator that reads from the given
// EventLog.
func NewMetricsCalculator(eventLog EventLog) MetricsCalculator {
	return &metricsCalculator{eventLog: eventLog}
}

// Calculate reads all events since the given time and aggregates them.
func (mc *metricsCalculator) Calculate(since time.Time) (*Metrics, error) {
	events, err := mc.eventLog.Read(EventFilter{Since: &since})
	if err != nil {
		return nil, fmt.Errorf("reading events for metrics: %w", err)
	}

	m := &Metrics{CompletionsByTask: make(map[string]int)}
	m.EventCount = len(events)

	for i, event := range events {
		if i == 0 {
			t := event.Time
			m.OldestEvent = &t
		}
		t := event.Time
		m.NewestEvent = &t

		switch event.Type {
		case "task.completed":
			m.TasksCompleted++
			if id, ok := event.Data["task_id"].(string); ok {
				m.CompletionsByTask[id]++
			}
		case "plan.generated":
			m.PlansGenerated++
		case "plan.reset":
			m.PlansReset++
		case "ledger.task_reset":
			m.TasksReset++
		case "ledger.entry_dropped":
			m.EntriesDropped++
		}
	}

	return m, nil
}
