// Package internal provides the App struct that wires all components of the
// chorewheel scheduler together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chorewheel/chorewheel/internal/cli"
	"github.com/chorewheel/chorewheel/internal/core"
	"github.com/chorewheel/chorewheel/internal/observability"
	"github.com/chorewheel/chorewheel/internal/storage"
	"github.com/chorewheel/chorewheel/pkg/models"
)

// App holds all service dependencies for the chorewheel system.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Storage layer
	CatalogMgr storage.CatalogManager
	LedgerMgr  storage.LedgerManager
	PlanMgr    storage.PlanManager

	// Core services
	Catalog   *core.Catalog
	Scheduler *core.Scheduler

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
}

// NewApp creates and wires all components of the chorewheel system.
// basePath is the root directory where all data is stored (typically the
// directory containing .chorewheelrc, or ~/.chorewheel).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		// A present but invalid config is an error; missing files already
		// fall back to defaults inside LoadGlobalConfig.
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// --- Catalog ---
	app.CatalogMgr = storage.NewCatalogManager(basePath)
	tasks, err := app.CatalogMgr.Load()
	if err != nil {
		return nil, err
	}
	app.Catalog, err = core.NewCatalog(tasks)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}

	// --- Storage layer ---
	knownTask := func(id string) bool {
		_, ok := app.Catalog.Task(id)
		return ok
	}
	app.LedgerMgr = storage.NewLedgerManager(basePath, knownTask)
	app.PlanMgr = storage.NewPlanManager(basePath)

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".chorewheel_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable observability if the log can't be created.
		app.EventLog = nil
	}
	if app.EventLog != nil {
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
	}

	// --- Core services ---
	// Adapters keep core free of storage and observability imports.
	ledgerAdapter := &ledgerStoreAdapter{mgr: app.LedgerMgr}
	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}
	app.Scheduler = core.NewScheduler(app.Catalog, globalCfg, ledgerAdapter, app.PlanMgr, evtAdapter)

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Scheduler = app.Scheduler
	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc

	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the base path for the chorewheel data directory.
// It checks the CHOREWHEEL_HOME env var, then walks up from the current
// directory looking for a .chorewheelrc or catalog.yaml, then falls back to
// ~/.chorewheel.
func ResolveBasePath() string {
	if home := os.Getenv("CHOREWHEEL_HOME"); home != "" {
		return home
	}

	dir, err := os.Getwd()
	if err == nil {
		for {
			if hasDataFile(dir) {
				return dir
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	if userHome, err := os.UserHomeDir(); err == nil {
		return filepath.Join(userHome, ".chorewheel")
	}
	cwd, _ := os.Getwd()
	return cwd
}

func hasDataFile(dir string) bool {
	for _, name := range []string{".chorewheelrc", "catalog.yaml", "ledger.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// --- Adapters ---

// ledgerStoreAdapter adapts storage.LedgerManager to core.LedgerStore,
// converting dropped-entry reports between the two packages' types.
type ledgerStoreAdapter struct {
	mgr storage.LedgerManager
}

func (a *ledgerStoreAdapter) Load() (*models.Ledger, []core.CorruptLedgerEntry, error) {
	ledger, dropped, err := a.mgr.Load()
	if err != nil {
		return nil, nil, err
	}
	out := make([]core.CorruptLedgerEntry, len(dropped))
	for i, d := range dropped {
		out[i] = core.CorruptLedgerEntry{TaskID: d.TaskID, Reason: d.Reason}
	}
	return ledger, out, nil
}

func (a *ledgerStoreAdapter) Save(ledger *models.Ledger) error {
	return a.mgr.Save(ledger)
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType, message string, data map[string]any) {
	_ = a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: message,
		Data:    data,
	})
}
