package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chorewheel/chorewheel/pkg/models"
	"gopkg.in/yaml.v3"
)

// PlanFile is the top-level structure of plans.yaml.
type PlanFile struct {
	Version string                    `yaml:"version"`
	Plans   map[string]models.DayPlan `yaml:"plans"`
}

// PlanManager caches computed day plans keyed by date. The cache is purely
// an optimization for the presentation layer: every plan can be recomputed
// from the catalog, ledger, and date.
type PlanManager interface {
	Get(date string) (*models.DayPlan, bool, error)
	Put(plan models.DayPlan) error
	Delete(date string) error
}

type filePlanManager struct {
	basePath string
}

// NewPlanManager creates a PlanManager backed by a plans.yaml file in the
// given base directory.
func NewPlanManager(basePath string) PlanManager {
	return &filePlanManager{basePath: basePath}
}

func (m *filePlanManager) filePath() string {
	return filepath.Join(m.basePath, "plans.yaml")
}

func (m *filePlanManager) load() (PlanFile, error) {
	pf := PlanFile{Version: "1.0", Plans: make(map[string]models.DayPlan)}
	data, err := os.ReadFile(m.filePath())
	if err != nil {
		if os.IsNotExist(err) {
			return pf, nil
		}
		return pf, fmt.Errorf("loading plans: %w", err)
	}
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return pf, fmt.Errorf("loading plans: parsing YAML: %w", err)
	}
	if pf.Plans == nil {
		pf.Plans = make(map[string]models.DayPlan)
	}
	return pf, nil
}

func (m *filePlanManager) save(pf PlanFile) error {
	if err := os.MkdirAll(m.basePath, 0o750); err != nil {
		return fmt.Errorf("saving plans: creating directory: %w", err)
	}
	data, err := yaml.Marshal(&pf)
	if err != nil {
		return fmt.Errorf("saving plans: marshaling YAML: %w", err)
	}
	if err := os.WriteFile(m.filePath(), data, 0o600); err != nil {
		return fmt.Errorf("saving plans: writing file: %w", err)
	}
	return nil
}

func (m *filePlanManager) Get(date string) (*models.DayPlan, bool, error) {
	pf, err := m.load()
	if err != nil {
		return nil, false, err
	}
	plan, ok := pf.Plans[date]
	if !ok {
		return nil, false, nil
	}
	return &plan, true, nil
}

func (m *filePlanManager) Put(plan models.DayPlan) error {
	pf, err := m.load()
	if err != nil {
		return err
	}
	pf.Plans[plan.Date] = plan
	return m.save(pf)
}

func (m *filePlanManager) Delete(date string) error {
	pf, err := m.load()
	if err != nil {
		return err
	}
	if _, ok := pf.Plans[date]; !ok {
		return nil
	}
	delete(pf.Plans, date)
	return m.save(pf)
}
