package ui

import (
	"strings"
	"testing"
)

func TestDisplay_DefaultsToZero(t *testing.T) {
	d := NewDisplay()

	if d.Text() != "0" {
		t.Errorf("Text() = %q, want %q for empty display", d.Text(), "0")
	}
}

func TestDisplay_SetText(t *testing.T) {
	d := NewDisplay()

	d.SetText("5+3")
	if d.Text() != "5+3" {
		t.Errorf("Text() = %q, want %q", d.Text(), "5+3")
	}
}

func TestDisplay_SetError(t *testing.T) {
	d := NewDisplay()
	d.SetText("5/0")

	d.SetError()
	if !d.IsError() {
		t.Error("IsError() = false after SetError")
	}
	if d.Text() != ErrorIndicator {
		t.Errorf("Text() = %q, want %q", d.Text(), ErrorIndicator)
	}

	// The next SetText clears the error indication.
	d.SetText("7")
	if d.IsError() {
		t.Error("IsError() = true after SetText")
	}
	if d.Text() != "7" {
		t.Errorf("Text() = %q, want %q", d.Text(), "7")
	}
}

func TestDisplay_ViewRightAligns(t *testing.T) {
	d := NewDisplay()
	d.SetWidth(20)
	d.SetText("42")

	view := d.View()
	lines := strings.Split(view, "\n")
	// Row 1 is the content row between the border rows.
	if len(lines) < 3 {
		t.Fatalf("expected bordered view, got %d lines", len(lines))
	}
	if !strings.Contains(view, "42") {
		t.Errorf("view does not contain display text: %q", view)
	}
	if strings.Contains(lines[1], "42  ") {
		t.Errorf("text does not appear right-aligned: %q", lines[1])
	}
}

func TestDisplay_ViewShowsGlyphs(t *testing.T) {
	d := NewDisplay()
	d.SetWidth(20)
	d.SetText("6×7")

	if !strings.Contains(d.View(), "6×7") {
		t.Error("view should contain the glyph expression")
	}
}

func TestDisplay_OverflowKeepsTail(t *testing.T) {
	d := NewDisplay()
	d.SetWidth(10)
	d.SetText("123456789012345")

	view := d.View()
	if !strings.Contains(view, "012345") {
		t.Errorf("overflowing display should keep the tail visible: %q", view)
	}
	if strings.Contains(view, "1234567890123") {
		t.Errorf("overflowing display should truncate the head: %q", view)
	}
}
