package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/config"
	"github.com/zhubert/tally/internal/keys"
	"github.com/zhubert/tally/internal/ui"
)

// testModel creates a test Model with an isolated config and the default
// theme restored afterwards.
func testModel(t *testing.T) *Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })

	cfg := &config.Config{WelcomeShown: true}
	return New(cfg, "0.0.0-test")
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int) *Model {
	t.Helper()
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "5", "+", "enter", "esc", "up"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m = sendKey(m, string(r))
	}
	return m
}

// mouseClick creates a left-button tea.MouseClickMsg at the given
// coordinates.
func mouseClick(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{
		X:      x,
		Y:      y,
		Button: tea.MouseLeft,
	}
}
