package ui

import (
	"strings"
	"testing"
)

func TestFooter_ViewShowsBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	view := f.View()

	for _, want := range []string{"enter", "clear", "±", "percent", "copy", "theme", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("footer view missing %q", want)
		}
	}
}

func TestFooter_Flash(t *testing.T) {
	f := NewFooter()
	f.SetWidth(80)

	if f.HasFlash() {
		t.Fatal("new footer should not have a flash")
	}

	f.SetFlash("copied to clipboard", FlashSuccess)
	if !f.HasFlash() {
		t.Fatal("HasFlash() = false after SetFlash")
	}
	view := f.View()
	if !strings.Contains(view, "copied to clipboard") {
		t.Errorf("flash view missing message, got %q", view)
	}
	if strings.Contains(view, "quit") {
		t.Error("flash view should replace keybindings")
	}

	f.ClearFlash()
	if f.HasFlash() {
		t.Error("HasFlash() = true after ClearFlash")
	}
	if !strings.Contains(f.View(), "quit") {
		t.Error("bindings should return after ClearFlash")
	}
}

func TestFooter_FlashTypes(t *testing.T) {
	for _, ft := range []FlashType{FlashInfo, FlashSuccess, FlashWarning, FlashError} {
		f := NewFooter()
		f.SetFlash("message", ft)
		if !strings.Contains(f.View(), "message") {
			t.Errorf("flash type %d did not render message", ft)
		}
	}
}

func TestFooter_SetBindings(t *testing.T) {
	f := NewFooter()
	f.SetBindings([]KeyBinding{{Key: "x", Desc: "exit"}})
	view := f.View()

	if !strings.Contains(view, "exit") {
		t.Error("custom binding missing from view")
	}
	if strings.Contains(view, "percent") {
		t.Error("default bindings should be replaced")
	}
}
