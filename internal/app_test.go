package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chorewheel/chorewheel/internal/cli"
)

func TestResolveBasePath_EnvVarTakesPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("CHOREWHEEL_HOME", tmpDir)

	got := ResolveBasePath()
	if got != tmpDir {
		t.Errorf("ResolveBasePath() = %q, want %q", got, tmpDir)
	}
}

func TestResolveBasePath_FindsDataFile(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "sub", "nested")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".chorewheelrc"), []byte("stats:\n  window_days: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	if err := os.Chdir(subDir); err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("CHOREWHEEL_HOME")

	got := ResolveBasePath()
	// Resolve symlinks before comparing: t.TempDir may sit under a symlinked
	// path (e.g. /tmp on macOS), and Getwd reports the resolved path.
	wantResolved, _ := filepath.EvalSymlinks(tmpDir)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("ResolveBasePath() = %q, want %q (should find .chorewheelrc in parent)", got, tmpDir)
	}
}

func TestNewAppWiresEverything(t *testing.T) {
	tmpDir := t.TempDir()

	app, err := NewApp(tmpDir)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.Close()

	if app.Catalog == nil || app.Catalog.Len() == 0 {
		t.Error("catalog not loaded")
	}
	if app.Scheduler == nil {
		t.Error("scheduler not wired")
	}
	if app.EventLog == nil || app.MetricsCalc == nil {
		t.Error("observability not wired")
	}
	if cli.Scheduler != app.Scheduler {
		t.Error("cli.Scheduler not set")
	}
	if cli.BasePath != tmpDir {
		t.Errorf("cli.BasePath = %q, want %q", cli.BasePath, tmpDir)
	}
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	bad := "scoring:\n  focus_boost: 0.1\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".chorewheelrc"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewApp(tmpDir); err == nil {
		t.Fatal("expected an error for an invalid config file")
	}
}

func TestNewAppRejectsBrokenCatalog(t *testing.T) {
	tmpDir := t.TempDir()
	bad := `version: "1.0"
tasks:
  - id: broken
    name: Broken task
    category: kitchen
    priority: essential
    frequency_days: 0
    duration: 2min
`
	if err := os.WriteFile(filepath.Join(tmpDir, "catalog.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewApp(tmpDir); err == nil {
		t.Fatal("expected an error for a catalog with a zero frequency")
	}
}
