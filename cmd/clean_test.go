package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"uppercase YES", "YES\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.input)
			result := confirm(reader, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	reader := strings.NewReader("")
	if confirm(reader, "Test?") {
		t.Error("confirm(EOF) = true, want false")
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	if confirm(&errorReader{}, "Test?") {
		t.Error("confirm(error) = true, want false")
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("read error")
}

func TestRunClean_NothingToClean(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := runCleanWithReader(strings.NewReader("y\n")); err != nil {
		t.Errorf("runCleanWithReader() = %v, want nil", err)
	}
}

func TestRunClean_Aborted(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// Write a config so the prompt is reached, then decline
	cfg := mustLoadConfig(t)
	cfg.SetTheme("nord")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	if err := runCleanWithReader(strings.NewReader("n\n")); err != nil {
		t.Errorf("runCleanWithReader() = %v, want nil", err)
	}

	// Declining keeps the config
	reloaded := mustLoadConfig(t)
	if reloaded.GetTheme() != "nord" {
		t.Error("config should survive an aborted clean")
	}
}

func TestRunClean_RemovesConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := mustLoadConfig(t)
	cfg.SetTheme("nord")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	if err := runCleanWithReader(strings.NewReader("y\n")); err != nil {
		t.Errorf("runCleanWithReader() = %v, want nil", err)
	}

	reloaded := mustLoadConfig(t)
	if reloaded.GetTheme() != "" {
		t.Error("config should be gone after clean")
	}
}
