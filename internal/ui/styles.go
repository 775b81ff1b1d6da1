package ui

import "charm.land/lipgloss/v2"

// Color palette - populated from the default theme, updated by
// regenerateStyles() on theme changes.
var (
	ColorPrimary      = lipgloss.Color(BuiltinThemes[DefaultTheme].Primary)
	ColorSecondary    = lipgloss.Color(BuiltinThemes[DefaultTheme].Secondary)
	ColorBg           = lipgloss.Color(BuiltinThemes[DefaultTheme].Bg)
	ColorBgDisplay    = lipgloss.Color(BuiltinThemes[DefaultTheme].BgDisplay)
	ColorText         = lipgloss.Color(BuiltinThemes[DefaultTheme].Text)
	ColorTextMuted    = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorTextInverse  = lipgloss.Color(BuiltinThemes[DefaultTheme].TextInverse)
	ColorWarning      = lipgloss.Color(BuiltinThemes[DefaultTheme].Warning)
	ColorError        = lipgloss.Color(BuiltinThemes[DefaultTheme].Error)
	ColorSuccess      = lipgloss.Color(BuiltinThemes[DefaultTheme].Success)
	ColorBorder       = lipgloss.Color(BuiltinThemes[DefaultTheme].Border)
	ColorBorderFocus  = lipgloss.Color(BuiltinThemes[DefaultTheme].GetBorderFocus())
	ColorButtonBg     = lipgloss.Color(BuiltinThemes[DefaultTheme].ButtonBg)
	ColorButtonHover  = lipgloss.Color(BuiltinThemes[DefaultTheme].ButtonHover)
	ColorButtonAccent = lipgloss.Color(BuiltinThemes[DefaultTheme].ButtonAccent)
)

// Header styles
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorText).
	Background(ColorPrimary).
	Padding(0, 1)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Display styles
var (
	DisplayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBgDisplay).
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	DisplayErrorStyle = DisplayStyle.
				Foreground(ColorError)
)

// Button styles
var (
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
)

// Modal styles
var (
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
)

// Flash styles
var (
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
)
