package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withTempHome points HOME at a temp dir so config I/O never touches the
// real user config.
func withTempHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	return tmpDir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	withTempHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.GetTheme() != "" {
		t.Errorf("Expected empty theme, got %q", cfg.GetTheme())
	}
	if cfg.IsWelcomeShown() {
		t.Error("Expected welcome not shown on fresh config")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	withTempHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg.SetTheme("nord")
	cfg.SetWelcomeShown()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}

	if loaded.GetTheme() != "nord" {
		t.Errorf("Theme = %q, want %q", loaded.GetTheme(), "nord")
	}
	if !loaded.IsWelcomeShown() {
		t.Error("WelcomeShown = false, want true")
	}
}

func TestSave_CreatesConfigDir(t *testing.T) {
	tmpDir := withTempHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, ".tally", "config.json")); err != nil {
		t.Errorf("Expected config file to exist: %v", err)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	tmpDir := withTempHome(t)

	dir := filepath.Join(tmpDir, ".tally")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error loading corrupt config")
	}
}
