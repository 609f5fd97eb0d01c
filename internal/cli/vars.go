package cli

import (
	"github.com/chorewheel/chorewheel/internal/core"
	"github.com/chorewheel/chorewheel/internal/observability"
)

// Service instances, set during app initialization in app.go.
var (
	Scheduler *core.Scheduler
	BasePath  string

	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
)
