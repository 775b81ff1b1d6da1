package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Button labels that are not digits or operator glyphs
const (
	LabelClear      = "C"
	LabelToggleSign = "±"
	LabelPercent    = "%"
	LabelEquals     = "="
)

// ButtonLayout mirrors the classic 4-column calculator arrangement.
var ButtonLayout = [][]string{
	{LabelClear, LabelToggleSign, LabelPercent, "÷"},
	{"7", "8", "9", "×"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", LabelEquals},
}

// Button cell geometry. Cells have a one-cell border on each side, so the
// rendered footprint is buttonInnerWidth+2 columns by 3 rows. HitTest
// depends on View using exactly this geometry.
const (
	buttonInnerWidth = 5
	cellWidth        = buttonInnerWidth + 2
	cellHeight       = 3
)

// GridWidth returns the total rendered width of the button grid
func GridWidth() int {
	return cellWidth * len(ButtonLayout[0])
}

// GridHeight returns the total rendered height of the button grid
func GridHeight() int {
	return cellHeight * len(ButtonLayout)
}

// PressFlashDuration is how long a button stays highlighted after being
// activated.
const PressFlashDuration = 120 * time.Millisecond

// PressFlashMsg is sent to clear the pressed-button highlight
type PressFlashMsg time.Time

// PressFlashTick returns a command that clears the pressed highlight after
// PressFlashDuration
func PressFlashTick() tea.Cmd {
	return tea.Tick(PressFlashDuration, func(t time.Time) tea.Msg {
		return PressFlashMsg(t)
	})
}

// Grid is the calculator button grid with a keyboard cursor and a
// short-lived pressed highlight.
type Grid struct {
	row     int
	col     int
	pressed string
}

// NewGrid creates a new button grid with the cursor on "C"
func NewGrid() *Grid {
	return &Grid{}
}

// Current returns the label under the cursor
func (g *Grid) Current() string {
	return ButtonLayout[g.row][g.col]
}

// MoveUp moves the cursor up one row
func (g *Grid) MoveUp() {
	if g.row > 0 {
		g.row--
		g.clampCol()
	}
}

// MoveDown moves the cursor down one row
func (g *Grid) MoveDown() {
	if g.row < len(ButtonLayout)-1 {
		g.row++
		g.clampCol()
	}
}

// MoveLeft moves the cursor left one column
func (g *Grid) MoveLeft() {
	if g.col > 0 {
		g.col--
	}
}

// MoveRight moves the cursor right one column
func (g *Grid) MoveRight() {
	if g.col < len(ButtonLayout[g.row])-1 {
		g.col++
	}
}

func (g *Grid) clampCol() {
	if g.col > len(ButtonLayout[g.row])-1 {
		g.col = len(ButtonLayout[g.row]) - 1
	}
}

// SetPressed highlights label as pressed until ClearPressed
func (g *Grid) SetPressed(label string) {
	g.pressed = label
}

// ClearPressed removes the pressed highlight
func (g *Grid) ClearPressed() {
	g.pressed = ""
}

// HitTest maps terminal coordinates relative to the grid's top-left corner
// to a button label. The second return is false when the point falls
// outside every button.
func (g *Grid) HitTest(x, y int) (string, bool) {
	if x < 0 || y < 0 {
		return "", false
	}
	row := y / cellHeight
	col := x / cellWidth
	if row >= len(ButtonLayout) || col >= len(ButtonLayout[row]) {
		return "", false
	}
	return ButtonLayout[row][col], true
}

// CursorTo moves the cursor to the button at row, col if one exists
func (g *Grid) CursorTo(row, col int) bool {
	if row < 0 || row >= len(ButtonLayout) || col < 0 || col >= len(ButtonLayout[row]) {
		return false
	}
	g.row = row
	g.col = col
	return true
}

// View renders the button grid
func (g *Grid) View() string {
	rows := make([]string, 0, len(ButtonLayout))
	for r, labels := range ButtonLayout {
		buttons := make([]string, 0, len(labels))
		for c, label := range labels {
			style := ButtonStyle
			switch {
			case label == g.pressed:
				style = ButtonPressedStyle
			case r == g.row && c == g.col:
				style = ButtonFocusedStyle
			}
			buttons = append(buttons, style.Width(buttonInnerWidth).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
