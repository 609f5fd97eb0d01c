// Package core contains the task-selection engine for chorewheel: urgency
// scoring, the weekly focus rotation, energy-based recommendation selection,
// completion-ledger mutation, and statistics aggregation. Everything here is
// deterministic over its inputs; the current date is always an explicit
// parameter and no function reads the clock.
package core

import "fmt"

// UnknownTaskError reports an operation against a task ID that is not in the
// catalog. It is never swallowed: callers surface it to the presentation
// layer.
type UnknownTaskError struct {
	TaskID string
}

func (e *UnknownTaskError) Error() string {
	return fmt.Sprintf("unknown task %q", e.TaskID)
}

// InvalidCatalogError reports a malformed catalog entry. A catalog that fails
// validation is fatal at load time; the engine refuses to score against it.
type InvalidCatalogError struct {
	TaskID string
	Reason string
}

func (e *InvalidCatalogError) Error() string {
	if e.TaskID == "" {
		return fmt.Sprintf("invalid catalog: %s", e.Reason)
	}
	return fmt.Sprintf("invalid catalog: task %q: %s", e.TaskID, e.Reason)
}

// CorruptLedgerEntry describes a ledger record that was dropped during load:
// either it references a task absent from the catalog or its date does not
// parse. Dropping one entry is cheaper than refusing to recommend anything,
// so these are warnings, not failures.
type CorruptLedgerEntry struct {
	TaskID string
	Reason string
}

func (e CorruptLedgerEntry) String() string {
	return fmt.Sprintf("ledger entry %q dropped: %s", e.TaskID, e.Reason)
}
