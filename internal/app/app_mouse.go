package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/ui"
)

// handleMouseClick maps a left click onto the button grid. Clicks while a
// modal is open, or with other buttons, are ignored.
func (m *Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() || msg.Button != tea.MouseLeft {
		return m, nil
	}

	label, ok := m.grid.HitTest(msg.X-gridOffsetX, msg.Y-gridOffsetY)
	if !ok {
		return m, nil
	}

	m.cursorToLabel(label)
	return m.activate(label)
}

// cursorToLabel moves the grid cursor onto the clicked button
func (m *Model) cursorToLabel(label string) {
	for r, row := range ui.ButtonLayout {
		for c, l := range row {
			if l == label {
				m.grid.CursorTo(r, c)
				return
			}
		}
	}
}
