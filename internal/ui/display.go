package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrorIndicator is what the display shows when an operation fails. The
// engine's structured error detail goes to the footer flash instead.
const ErrorIndicator = "Error"

// Display is the calculator's read-only result field. It renders the
// current expression right-aligned, the way desktop calculators do.
type Display struct {
	width   int
	text    string
	isError bool
}

// NewDisplay creates a new display
func NewDisplay() *Display {
	return &Display{width: GridWidth()}
}

// SetWidth sets the display width
func (d *Display) SetWidth(width int) {
	d.width = width
}

// SetText updates the display contents and clears any error indication
func (d *Display) SetText(text string) {
	d.text = text
	d.isError = false
}

// SetError switches the display to the error indicator until the next
// SetText call
func (d *Display) SetError() {
	d.isError = true
}

// Text returns the current display text
func (d *Display) Text() string {
	if d.isError {
		return ErrorIndicator
	}
	if d.text == "" {
		return "0"
	}
	return d.text
}

// IsError reports whether the display is showing the error indicator
func (d *Display) IsError() bool {
	return d.isError
}

// View renders the display field
func (d *Display) View() string {
	text := d.Text()

	// Inner width: total minus the border and padding columns.
	inner := d.width - 4
	if inner < 1 {
		inner = 1
	}

	// Keep the tail visible when the text overflows.
	for runewidth.StringWidth(text) > inner {
		runes := []rune(text)
		text = string(runes[1:])
	}

	padding := inner - runewidth.StringWidth(text)
	if padding > 0 {
		text = strings.Repeat(" ", padding) + text
	}

	if d.isError {
		return DisplayErrorStyle.Render(text)
	}
	return DisplayStyle.Render(text)
}
