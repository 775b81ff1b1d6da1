package ui

import (
	"strings"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g := NewGrid()

	if g.Current() != LabelClear {
		t.Errorf("Current() = %q, want %q", g.Current(), LabelClear)
	}
}

func TestGrid_Navigation(t *testing.T) {
	g := NewGrid()

	g.MoveDown()
	if g.Current() != "7" {
		t.Errorf("after down: Current() = %q, want %q", g.Current(), "7")
	}

	g.MoveRight()
	if g.Current() != "8" {
		t.Errorf("after right: Current() = %q, want %q", g.Current(), "8")
	}

	g.MoveUp()
	if g.Current() != LabelToggleSign {
		t.Errorf("after up: Current() = %q, want %q", g.Current(), LabelToggleSign)
	}

	g.MoveLeft()
	if g.Current() != LabelClear {
		t.Errorf("after left: Current() = %q, want %q", g.Current(), LabelClear)
	}
}

func TestGrid_NavigationClampsAtEdges(t *testing.T) {
	g := NewGrid()

	g.MoveUp()
	g.MoveLeft()
	if g.Current() != LabelClear {
		t.Errorf("cursor moved past top-left: %q", g.Current())
	}

	for i := 0; i < 10; i++ {
		g.MoveDown()
		g.MoveRight()
	}
	// Bottom row has only three buttons.
	if g.Current() != LabelEquals {
		t.Errorf("cursor should end on %q, got %q", LabelEquals, g.Current())
	}
}

func TestGrid_CursorClampsOnShortRow(t *testing.T) {
	g := NewGrid()

	// Rightmost column, then down to the three-button bottom row.
	for i := 0; i < 3; i++ {
		g.MoveRight()
	}
	for i := 0; i < 4; i++ {
		g.MoveDown()
	}
	if g.Current() != LabelEquals {
		t.Errorf("Current() = %q, want %q", g.Current(), LabelEquals)
	}
}

func TestGrid_HitTest(t *testing.T) {
	g := NewGrid()

	tests := []struct {
		name  string
		x, y  int
		label string
		ok    bool
	}{
		{"top-left button", 0, 0, LabelClear, true},
		{"middle of C", 3, 1, LabelClear, true},
		{"divide glyph", cellWidth*3 + 1, 1, "÷", true},
		{"seven", 1, cellHeight + 1, "7", true},
		{"equals", cellWidth*2 + 1, cellHeight*4 + 1, LabelEquals, true},
		{"right of bottom row", cellWidth*3 + 1, cellHeight*4 + 1, "", false},
		{"below grid", 0, cellHeight * 5, "", false},
		{"negative", -1, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := g.HitTest(tt.x, tt.y)
			if ok != tt.ok || label != tt.label {
				t.Errorf("HitTest(%d, %d) = %q, %v; want %q, %v", tt.x, tt.y, label, ok, tt.label, tt.ok)
			}
		})
	}
}

func TestGrid_CursorTo(t *testing.T) {
	g := NewGrid()

	if !g.CursorTo(1, 3) {
		t.Fatal("CursorTo(1, 3) = false, want true")
	}
	if g.Current() != "×" {
		t.Errorf("Current() = %q, want %q", g.Current(), "×")
	}

	if g.CursorTo(4, 3) {
		t.Error("CursorTo(4, 3) should fail on the three-button row")
	}
	if g.CursorTo(9, 0) {
		t.Error("CursorTo(9, 0) should fail outside the grid")
	}
}

func TestGrid_ViewContainsAllLabels(t *testing.T) {
	g := NewGrid()
	view := g.View()

	for _, row := range ButtonLayout {
		for _, label := range row {
			if !strings.Contains(view, label) {
				t.Errorf("view missing button %q", label)
			}
		}
	}
}

func TestGrid_Pressed(t *testing.T) {
	g := NewGrid()

	g.SetPressed("5")
	if g.pressed != "5" {
		t.Errorf("pressed = %q, want %q", g.pressed, "5")
	}

	g.ClearPressed()
	if g.pressed != "" {
		t.Error("ClearPressed did not clear")
	}
}

func TestGridDimensions(t *testing.T) {
	if GridWidth() != cellWidth*4 {
		t.Errorf("GridWidth() = %d, want %d", GridWidth(), cellWidth*4)
	}
	if GridHeight() != cellHeight*5 {
		t.Errorf("GridHeight() = %d, want %d", GridHeight(), cellHeight*5)
	}
}
