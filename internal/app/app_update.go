package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/clipboard"
	"github.com/zhubert/tally/internal/errors"
	"github.com/zhubert/tally/internal/keys"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/ui"
)

// inputTokens are the keys that feed straight into the expression buffer.
const inputTokens = "0123456789.+-*/()"

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case StartupModalMsg:
		return m.handleStartupModals()

	case ui.FlashTickMsg:
		m.footer.ClearFlash()

	case ui.PressFlashMsg:
		m.grid.ClearPressed()
	}

	// Forward remaining messages to an open modal (huh form animation,
	// blink ticks, and similar)
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles all keyboard input
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Debug("App: KeyPressMsg received: key=%q, modalVisible=%v", key, m.modal.IsVisible())

	if m.modal.IsVisible() {
		return m.handleModalKeys(key, msg)
	}

	switch key {
	case "q", keys.CtrlC:
		return m, tea.Quit

	case "t":
		m.prevTheme = string(ui.CurrentThemeName())
		m.modal.Show(ui.NewThemeState(m.prevTheme))
		return m, nil

	case "?":
		m.modal.Show(ui.NewHelpState())
		return m, nil

	case keys.Enter, "=":
		return m.activate(ui.LabelEquals)

	case keys.Escape:
		return m.activate(ui.LabelClear)

	case keys.Backspace, keys.Delete:
		m.display.SetText(m.engine.Backspace())
		return m, nil

	case "s":
		return m.activate(ui.LabelToggleSign)

	case "%":
		return m.activate(ui.LabelPercent)

	case "y":
		return m.copyToClipboard()

	case keys.Up:
		m.grid.MoveUp()
		return m, nil

	case keys.Down:
		m.grid.MoveDown()
		return m, nil

	case keys.Left:
		m.grid.MoveLeft()
		return m, nil

	case keys.Right:
		m.grid.MoveRight()
		return m, nil

	case keys.Space:
		return m.activate(m.grid.Current())
	}

	if len(key) == 1 && strings.ContainsAny(key, inputTokens) {
		return m.activate(key)
	}

	return m, nil
}

// handleModalKeys routes keyboard input while a modal is open
func (m *Model) handleModalKeys(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch state := m.modal.State.(type) {
	case *ui.ThemeState:
		switch key {
		case keys.Enter:
			return m.applyTheme(state.Selection())
		case keys.Escape:
			ui.SetThemeByName(m.prevTheme)
			m.header.SetThemeName(m.prevTheme)
			m.modal.Hide()
			return m, nil
		}
		// Let the select move, then preview the highlighted theme live
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		ui.SetThemeByName(state.Selection())
		m.header.SetThemeName(state.Selection())
		return m, cmd

	case *ui.HelpState:
		switch key {
		case keys.Enter, keys.Escape, "q", "?":
			m.modal.Hide()
		}
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// applyTheme persists the chosen theme and closes the picker
func (m *Model) applyTheme(name string) (tea.Model, tea.Cmd) {
	ui.SetThemeByName(name)
	m.header.SetThemeName(string(ui.CurrentThemeName()))
	m.modal.Hide()

	m.config.SetTheme(name)
	if err := m.config.Save(); err != nil {
		logger.Error("App: failed to save theme: %v", err)
		return m, m.ShowFlashError("could not save theme: " + errors.Message(err))
	}
	return m, m.ShowFlashSuccess("theme: " + name)
}

// activate presses the button with the given label, whether it was reached
// by keyboard, cursor, or mouse.
func (m *Model) activate(label string) (tea.Model, tea.Cmd) {
	m.grid.SetPressed(label)
	cmds := []tea.Cmd{ui.PressFlashTick()}

	switch label {
	case ui.LabelClear:
		m.display.SetText(m.engine.Clear())

	case ui.LabelToggleSign:
		m.display.SetText(m.engine.ToggleSign())

	case ui.LabelPercent:
		text, err := m.engine.Percentage()
		switch {
		case errors.Is(err, errors.KindEmptyExpression):
			cmds = append(cmds, m.ShowFlashWarning(errors.Message(err)))
		case err != nil:
			m.display.SetError()
			cmds = append(cmds, m.ShowFlashError(errors.Message(err)))
		default:
			m.display.SetText(text)
		}

	case ui.LabelEquals:
		text, err := m.engine.Calculate()
		switch {
		case errors.Is(err, errors.KindEmptyExpression):
			cmds = append(cmds, m.ShowFlashWarning(errors.Message(err)))
		case err != nil:
			m.display.SetError()
			cmds = append(cmds, m.ShowFlashError(errors.Message(err)))
		default:
			m.display.SetText(text)
		}

	default:
		text, err := m.engine.Press(label)
		if err != nil {
			cmds = append(cmds, m.ShowFlashWarning(errors.Message(err)))
		} else {
			m.display.SetText(text)
		}
	}

	return m, tea.Batch(cmds...)
}

// copyToClipboard copies the display contents
func (m *Model) copyToClipboard() (tea.Model, tea.Cmd) {
	if m.display.IsError() {
		return m, m.ShowFlashWarning("nothing to copy")
	}
	if err := clipboard.WriteText(m.display.Text()); err != nil {
		logger.Error("App: clipboard write failed: %v", err)
		return m, m.ShowFlashError("copy failed: " + err.Error())
	}
	return m, m.ShowFlashSuccess("copied to clipboard")
}
