package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogLoadMissingFileUsesDefault(t *testing.T) {
	mgr := NewCatalogManager(t.TempDir())
	tasks, err := mgr.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != len(DefaultCatalog()) {
		t.Errorf("got %d tasks, want the %d default tasks", len(tasks), len(DefaultCatalog()))
	}
}

func TestCatalogLoadCustomFile(t *testing.T) {
	dir := t.TempDir()
	content := `version: "1.0"
tasks:
  - id: wash-windows
    name: Wash the windows
    category: general
    priority: low
    frequency_days: 90
    duration: 15min
`
	if err := os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tasks, err := NewCatalogManager(dir).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	task := tasks[0]
	if task.ID != "wash-windows" || task.FrequencyDays != 90 {
		t.Errorf("task = %+v", task)
	}
}

func TestCatalogLoadEmptyFileIsError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("version: \"1.0\"\ntasks: []\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := NewCatalogManager(dir).Load(); err == nil {
		t.Fatal("expected an error for a task-less catalog, got nil")
	}
}

func TestCatalogLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "catalog.yaml"), []byte("tasks: {broken"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := NewCatalogManager(dir).Load(); err == nil {
		t.Fatal("expected a parse error, got nil")
	}
}
