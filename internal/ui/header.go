package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width     int
	themeName string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetThemeName sets the theme name shown on the right
func (h *Header) SetThemeName(name string) {
	h.themeName = name
}

// View renders the header
func (h *Header) View() string {
	titleText := " tally"
	var rightText string
	if h.themeName != "" {
		rightText = h.themeName + " "
	}

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	content := titleText + strings.Repeat(" ", paddingLen) + rightText
	return HeaderStyle.Render(content)
}
