package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tally/internal/config"
	"github.com/zhubert/tally/internal/engine"
	"github.com/zhubert/tally/internal/logger"
	"github.com/zhubert/tally/internal/ui"
)

// Layout geometry. The display renders one content row inside a rounded
// border, so it occupies three terminal rows. The grid starts right below.
const (
	headerHeight  = 1
	displayHeight = 3
	gridOffsetY   = headerHeight + displayHeight
	gridOffsetX   = 0
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	engine  *engine.Engine
	header  *ui.Header
	footer  *ui.Footer
	display *ui.Display
	grid    *ui.Grid
	modal   *ui.Modal

	width  int
	height int

	// Theme active before the picker opened, restored on cancel
	prevTheme string
}

// StartupModalMsg is sent on app start to trigger the welcome modal
type StartupModalMsg struct{}

// New creates a new app model
func New(cfg *config.Config, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:  cfg,
		version: version,
		engine:  engine.New(logger.ComponentLogger("Engine")),
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		display: ui.NewDisplay(),
		grid:    ui.NewGrid(),
		modal:   ui.NewModal(),
	}

	m.header.SetThemeName(string(ui.CurrentThemeName()))

	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupModalMsg{}
	}
}

// updateSizes propagates the window size to the full-width bars. The
// display and grid keep their fixed calculator footprint.
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.display.SetWidth(ui.GridWidth())
}

// handleStartupModals shows the shortcut help on first launch
func (m *Model) handleStartupModals() (tea.Model, tea.Cmd) {
	if m.config.IsWelcomeShown() {
		return m, nil
	}
	m.config.SetWelcomeShown()
	if err := m.config.Save(); err != nil {
		logger.Warn("App: failed to save config: %v", err)
	}
	m.modal.Show(ui.NewHelpState())
	return m, nil
}
