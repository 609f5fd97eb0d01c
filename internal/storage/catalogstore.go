// Package storage provides YAML-file-backed persistence for the chorewheel
// catalog, completion ledger, and day-plan cache. Stores hand plain records
// to the core engine; no business logic lives here.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chorewheel/chorewheel/pkg/models"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the top-level structure of catalog.yaml.
type CatalogFile struct {
	Version string        `yaml:"version"`
	Tasks   []models.Task `yaml:"tasks"`
}

// CatalogManager loads the task catalog.
type CatalogManager interface {
	Load() ([]models.Task, error)
}

type fileCatalogManager struct {
	basePath string
}

// NewCatalogManager creates a CatalogManager that reads catalog.yaml from the
// given base directory, falling back to the built-in catalog when the file
// does not exist.
func NewCatalogManager(basePath string) CatalogManager {
	return &fileCatalogManager{basePath: basePath}
}

func (m *fileCatalogManager) filePath() string {
	return filepath.Join(m.basePath, "catalog.yaml")
}

// Load reads and decodes catalog.yaml. A missing file yields the built-in
// default catalog; a present but unreadable or unparseable file is an error,
// since scoring against a half-read catalog would be worse than failing.
func (m *fileCatalogManager) Load() ([]models.Task, error) {
	data, err := os.ReadFile(m.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	var cf CatalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("loading catalog: parsing YAML: %w", err)
	}
	if len(cf.Tasks) == 0 {
		return nil, fmt.Errorf("loading catalog: file %s contains no tasks", m.filePath())
	}
	return cf.Tasks, nil
}
