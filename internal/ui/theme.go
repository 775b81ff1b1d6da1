// Package ui provides the visual components of the calculator: display
// field, button grid, header, footer, modals, and the theme system that
// colors them.
package ui

import "charm.land/lipgloss/v2"

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (header, focus, highlights)
	Primary string
	// Secondary is the secondary accent color (footer keys, hints)
	Secondary string

	// Background colors
	Bg        string // Main background
	BgDisplay string // Display field background

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string // Warnings
	Error   string // Error indicator
	Success string // Success flashes

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// Button colors
	ButtonBg     string // Digit/operator button background
	ButtonHover  string // Focused/hovered button background
	ButtonAccent string // Accent buttons (equals, clear)
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeSlate   ThemeName = "slate"
	ThemeNord    ThemeName = "nord"
	ThemeDracula ThemeName = "dracula"
	ThemeGruvbox ThemeName = "gruvbox"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeSlate

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	// Slate carries the palette of the classic desktop calculator this app
	// grew out of.
	ThemeSlate: {
		Name:         "Slate",
		Primary:      "#3498DB",
		Secondary:    "#85C1E9",
		Bg:           "#2C3E50",
		BgDisplay:    "#34495E",
		Text:         "#FFFFFF",
		TextMuted:    "#ECF0F1",
		TextInverse:  "#2C3E50",
		Warning:      "#F39C12",
		Error:        "#E74C3C",
		Success:      "#2ECC71",
		Border:       "#34495E",
		ButtonBg:     "#3498DB",
		ButtonHover:  "#2980B9",
		ButtonAccent: "#E67E22",
	},
	ThemeNord: {
		Name:         "Nord",
		Primary:      "#88C0D0",
		Secondary:    "#81A1C1",
		Bg:           "#2E3440",
		BgDisplay:    "#3B4252",
		Text:         "#ECEFF4",
		TextMuted:    "#D8DEE9",
		TextInverse:  "#2E3440",
		Warning:      "#EBCB8B",
		Error:        "#BF616A",
		Success:      "#A3BE8C",
		Border:       "#4C566A",
		ButtonBg:     "#434C5E",
		ButtonHover:  "#5E81AC",
		ButtonAccent: "#88C0D0",
	},
	ThemeDracula: {
		Name:         "Dracula",
		Primary:      "#BD93F9",
		Secondary:    "#8BE9FD",
		Bg:           "#282A36",
		BgDisplay:    "#21222C",
		Text:         "#F8F8F2",
		TextMuted:    "#6272A4",
		TextInverse:  "#282A36",
		Warning:      "#FFB86C",
		Error:        "#FF5555",
		Success:      "#50FA7B",
		Border:       "#44475A",
		ButtonBg:     "#44475A",
		ButtonHover:  "#6272A4",
		ButtonAccent: "#BD93F9",
	},
	ThemeGruvbox: {
		Name:         "Gruvbox Dark",
		Primary:      "#FE8019",
		Secondary:    "#83A598",
		Bg:           "#282828",
		BgDisplay:    "#1D2021",
		Text:         "#EBDBB2",
		TextMuted:    "#A89984",
		TextInverse:  "#282828",
		Warning:      "#FABD2F",
		Error:        "#FB4934",
		Success:      "#B8BB26",
		Border:       "#504945",
		ButtonBg:     "#3C3836",
		ButtonHover:  "#504945",
		ButtonAccent: "#FE8019",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeSlate,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
	}
}

// GetTheme returns a theme by name, defaulting to Slate if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBg = lipgloss.Color(t.Bg)
	ColorBgDisplay = lipgloss.Color(t.BgDisplay)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorButtonBg = lipgloss.Color(t.ButtonBg)
	ColorButtonHover = lipgloss.Color(t.ButtonHover)
	ColorButtonAccent = lipgloss.Color(t.ButtonAccent)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	DisplayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Background(ColorBgDisplay).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	DisplayErrorStyle = DisplayStyle.
		Foreground(ColorError)

	ButtonStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Background(ColorButtonBg).
		Foreground(ColorText).
		Align(lipgloss.Center)

	ButtonFocusedStyle = ButtonStyle.
		BorderForeground(ColorBorderFocus).
		Background(ColorButtonHover)

	ButtonPressedStyle = ButtonStyle.
		Background(ColorButtonAccent).
		Foreground(ColorTextInverse).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1)

	FlashInfoStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Padding(0, 1)

	FlashSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Padding(0, 1)

	FlashWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Padding(0, 1)

	FlashErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Padding(0, 1)
}
