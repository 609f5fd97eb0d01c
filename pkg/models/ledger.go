package models

import "time"

// DateFormat is the wire format for all calendar dates in ledger and plan
// files. Dates are calendar days, not instants; no timezone is stored.
const DateFormat = "2006-01-02"

// CompletionRecord tracks when a task was last completed. An empty LastDone
// means the task has never been completed. Dates holds every recorded
// completion day in chronological order; Count is the total number of
// completions.
type CompletionRecord struct {
	TaskID   string   `yaml:"task_id"`
	LastDone string   `yaml:"last_done,omitempty"`
	Count    int      `yaml:"count,omitempty"`
	Dates    []string `yaml:"dates,omitempty"`
}

// LastDoneDate parses the record's last-completed day. The second return is
// false when the task has never been completed or the stored value does not
// parse.
func (r CompletionRecord) LastDoneDate() (time.Time, bool) {
	if r.LastDone == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateFormat, r.LastDone)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Ledger is the in-memory completion ledger: one record per task, keyed by
// task ID. It is an explicit value passed into and returned from core
// operations; persistence is the storage layer's concern.
type Ledger struct {
	Version string                      `yaml:"version"`
	Records map[string]CompletionRecord `yaml:"records"`
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Version: "1.0",
		Records: make(map[string]CompletionRecord),
	}
}

// Record returns the completion record for taskID, defaulting to a
// never-completed record when the task has not been referenced before.
func (l *Ledger) Record(taskID string) CompletionRecord {
	if rec, ok := l.Records[taskID]; ok {
		return rec
	}
	return CompletionRecord{TaskID: taskID}
}
