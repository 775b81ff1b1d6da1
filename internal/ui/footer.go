package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType categorizes a footer flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient message shown in place of the keybindings
type FlashMessage struct {
	Text     string
	Type     FlashType
	Duration time.Duration
}

// FlashTickMsg is sent when a flash message should be dismissed
type FlashTickMsg time.Time

// FlashTick returns a command that dismisses the flash after
// DefaultFlashDuration
func FlashTick() tea.Cmd {
	return tea.Tick(DefaultFlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "enter", Desc: "="},
			{Key: "esc", Desc: "clear"},
			{Key: "bksp", Desc: "delete"},
			{Key: "s", Desc: "±"},
			{Key: "%", Desc: "percent"},
			{Key: "y", Desc: "copy"},
			{Key: "t", Desc: "theme"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a transient message in place of the keybindings
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashMessage = &FlashMessage{
		Text:     text,
		Type:     flashType,
		Duration: DefaultFlashDuration,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		style := FlashInfoStyle
		switch f.flashMessage.Type {
		case FlashSuccess:
			style = FlashSuccessStyle
		case FlashWarning:
			style = FlashWarningStyle
		case FlashError:
			style = FlashErrorStyle
		}
		return style.Width(f.width).Render(f.flashMessage.Text)
	}

	var parts []string
	for _, b := range f.bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	separator := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := strings.Join(parts, separator)
	return FooterStyle.Width(f.width).Render(content)
}
