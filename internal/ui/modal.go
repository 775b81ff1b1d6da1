package ui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/tally/internal/keys"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// ModalFormTheme returns a huh theme matching the current color palette.
// Called each time a form is created to pick up the active theme colors.
func ModalFormTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		t.Focused.Description = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)

		t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorPrimary).SetString("> ")
		t.Focused.Option = lipgloss.NewStyle().Foreground(ColorText)
		t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles

		return t
	})
}

// huhFormUpdate is the common Update logic for huh-based modals.
// It intercepts Enter and Escape (handled by the app-layer modal handlers)
// and delegates everything else to the huh form.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	form = m.(*huh.Form)
	return form, cmd
}

// =============================================================================
// ThemeState - State for the theme picker modal
// =============================================================================

// ThemeState holds state for the theme selection modal.
type ThemeState struct {
	form      *huh.Form
	selection string
}

func (*ThemeState) modalState() {}

func (s *ThemeState) Title() string { return "Theme" }

func (s *ThemeState) Help() string {
	return "up/down: navigate  Enter: apply  Esc: cancel"
}

func (s *ThemeState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ThemeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selection returns the chosen theme identifier.
func (s *ThemeState) Selection() string {
	return s.selection
}

// NewThemeState creates a theme picker preselecting the current theme.
func NewThemeState(current string) *ThemeState {
	s := &ThemeState{selection: current}

	options := make([]huh.Option[string], 0, len(ThemeNames()))
	for _, name := range ThemeNames() {
		options = append(options, huh.NewOption(BuiltinThemes[name].Name, string(name)))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(options...).
				Value(&s.selection),
		),
	).WithTheme(ModalFormTheme()).WithShowHelp(false)

	s.form.Init()
	return s
}

// =============================================================================
// HelpState - State for the keyboard help modal
// =============================================================================

// HelpState holds state for the keyboard shortcuts modal.
type HelpState struct{}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	return "Press Enter or Esc to dismiss"
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	shortcuts := [][2]string{
		{"0-9 . ( )", "enter digits"},
		{"+ - * /", "operators"},
		{"enter or =", "calculate"},
		{"backspace", "delete last character"},
		{"esc", "clear"},
		{"s", "toggle sign"},
		{"%", "percentage"},
		{"y", "copy result to clipboard"},
		{"arrows + space", "navigate and press buttons"},
		{"t", "change theme"},
		{"q or ctrl+c", "quit"},
	}

	var lines []string
	for _, sc := range shortcuts {
		key := FooterKeyStyle.Width(16).Render(sc[0])
		lines = append(lines, key+FooterDescStyle.Render(sc[1]))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewHelpState creates a new HelpState
func NewHelpState() *HelpState {
	return &HelpState{}
}
