package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chorewheel/chorewheel/pkg/models"
	"gopkg.in/yaml.v3"
)

// DroppedEntry describes a ledger record discarded during load.
// NOTE: mirrored by core.CorruptLedgerEntry; the app layer adapts between
// the two so core does not import storage.
type DroppedEntry struct {
	TaskID string
	Reason string
}

// LedgerManager persists the completion ledger as ledger.yaml.
type LedgerManager interface {
	Load() (*models.Ledger, []DroppedEntry, error)
	Save(ledger *models.Ledger) error
}

type fileLedgerManager struct {
	basePath string
	// knownTask reports whether a task ID exists in the catalog. Records
	// for unknown IDs are dropped on load rather than failing the whole
	// session.
	knownTask func(id string) bool
}

// NewLedgerManager creates a LedgerManager backed by a ledger.yaml file in
// the given base directory. knownTask validates record IDs against the
// catalog; pass nil to skip that check.
func NewLedgerManager(basePath string, knownTask func(id string) bool) LedgerManager {
	return &fileLedgerManager{basePath: basePath, knownTask: knownTask}
}

func (m *fileLedgerManager) filePath() string {
	return filepath.Join(m.basePath, "ledger.yaml")
}

// Load reads ledger.yaml. A missing file yields an empty ledger. Records
// referencing unknown tasks or carrying unparseable dates are dropped and
// reported; one bad history entry should not cost the whole recommendation
// pass.
func (m *fileLedgerManager) Load() (*models.Ledger, []DroppedEntry, error) {
	data, err := os.ReadFile(m.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewLedger(), nil, nil
		}
		return nil, nil, fmt.Errorf("loading ledger: %w", err)
	}

	var ledger models.Ledger
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		return nil, nil, fmt.Errorf("loading ledger: parsing YAML: %w", err)
	}
	if ledger.Records == nil {
		ledger.Records = make(map[string]models.CompletionRecord)
	}
	if ledger.Version == "" {
		ledger.Version = "1.0"
	}

	var dropped []DroppedEntry
	for id, rec := range ledger.Records {
		if rec.TaskID == "" {
			rec.TaskID = id
		}
		if m.knownTask != nil && !m.knownTask(id) {
			dropped = append(dropped, DroppedEntry{TaskID: id, Reason: "not in catalog"})
			delete(ledger.Records, id)
			continue
		}
		if rec.LastDone != "" {
			if _, err := time.Parse(models.DateFormat, rec.LastDone); err != nil {
				dropped = append(dropped, DroppedEntry{TaskID: id, Reason: "unparseable last_done " + rec.LastDone})
				delete(ledger.Records, id)
				continue
			}
		}
		ledger.Records[id] = rec
	}

	return &ledger, dropped, nil
}

// Save writes the ledger back to ledger.yaml.
func (m *fileLedgerManager) Save(ledger *models.Ledger) error {
	if err := os.MkdirAll(m.basePath, 0o750); err != nil {
		return fmt.Errorf("saving ledger: creating directory: %w", err)
	}
	data, err := yaml.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("saving ledger: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(m.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("saving ledger: writing file: %w", err)
	}
	return nil
}
