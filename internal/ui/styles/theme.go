// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for pocketcalc.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Sizing shared by the theme and the keypad layout.
const (
	// KeyWidth is the inner width of one key, borders excluded.
	KeyWidth = 7

	// FullLayoutHeight is the terminal height needed for tall keys.
	// Below it the keypad drops the vertical key padding.
	FullLayoutHeight = 40
)

// Theme holds all the styled components for the calculator.
// It is presentation only: nothing here reads or writes calculator state.
type Theme struct {
	// Mode is what the user asked for; IsDark is what it resolved to.
	Mode         Mode
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// CONTAINER STYLES
	// ==========================================================================

	App   lipgloss.Style
	Frame lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	HeaderTitle lipgloss.Style
	ToggleKey   lipgloss.Style

	// ==========================================================================
	// DISPLAY STYLES
	// ==========================================================================

	Display     lipgloss.Style
	DisplayText lipgloss.Style

	// ==========================================================================
	// KEY STYLES
	// ==========================================================================

	FunctionKey      lipgloss.Style
	DigitKey         lipgloss.Style
	OperatorKey      lipgloss.Style
	OperatorSelected lipgloss.Style
	EqualsKey        lipgloss.Style

	// FocusBorder is the border color of the key under the cursor.
	FocusBorder lipgloss.TerminalColor

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	Help lipgloss.Style
}

// NewTheme creates a theme for the given mode. ModeAuto follows the
// terminal background.
func NewTheme(mode Mode) *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.SetMode(mode)
	return t
}

// SetMode switches the palette and rebuilds every style. ModeAuto asks
// the terminal for its background again.
func (t *Theme) SetMode(mode Mode) {
	t.Mode = mode
	t.IsDark = mode == ModeDark
	if mode == ModeAuto {
		t.IsDark = termenv.HasDarkBackground()
	}
	t.initStyles()
}

// Toggle flips between light and dark and rebuilds every style.
func (t *Theme) Toggle() {
	if t.IsDark {
		t.SetMode(ModeLight)
	} else {
		t.SetMode(ModeDark)
	}
}

// Name returns "light" or "dark" for the resolved palette.
func (t *Theme) Name() string {
	if t.IsDark {
		return ModeDark.String()
	}
	return ModeLight.String()
}

// Color resolves an adaptive color against the theme's light/dark flag.
func (t *Theme) Color(c lipgloss.AdaptiveColor) lipgloss.Color {
	if t.IsDark {
		return lipgloss.Color(c.Dark)
	}
	return lipgloss.Color(c.Light)
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	base := t.Color(Base)
	surface := t.Color(Surface)

	t.App = lipgloss.NewStyle().
		Background(base)

	t.Frame = lipgloss.NewStyle().
		Background(surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Color(SurfaceBorder)).
		BorderBackground(base).
		Padding(1, 2)

	// Header
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Color(TextPrimary)).
		Background(surface)

	t.ToggleKey = lipgloss.NewStyle().
		Foreground(t.Color(Accent)).
		Background(surface)

	// Display
	t.Display = lipgloss.NewStyle().
		Background(t.Color(DisplayBg)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Color(DisplayBorder)).
		BorderBackground(surface).
		Align(lipgloss.Right).
		Padding(0, 1)

	t.DisplayText = lipgloss.NewStyle().
		Foreground(t.Color(TextPrimary)).
		Background(t.Color(DisplayBg))

	// Keys are pills: the border takes the key color so the outline
	// reads as a rounded edge.
	key := lipgloss.NewStyle().
		Width(KeyWidth).
		Align(lipgloss.Center).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderBackground(surface)

	t.FunctionKey = key.
		Foreground(t.Color(FunctionKeyFg)).
		Background(t.Color(FunctionKeyBg)).
		BorderForeground(t.Color(FunctionKeyBg))

	t.DigitKey = key.
		Foreground(t.Color(DigitKeyFg)).
		Background(t.Color(DigitKeyBg)).
		BorderForeground(t.Color(DigitKeyBorder))

	t.OperatorKey = key.
		Foreground(t.Color(AccentText)).
		Background(t.Color(Accent)).
		BorderForeground(t.Color(Accent))

	t.OperatorSelected = key.
		Bold(true).
		Foreground(t.Color(Accent)).
		Background(t.Color(SelectedBg)).
		BorderForeground(t.Color(SelectedBg))

	t.EqualsKey = t.OperatorKey

	t.FocusBorder = t.Color(TextPrimary)

	// Footer
	t.Help = lipgloss.NewStyle().
		Foreground(t.Color(TextMuted))
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// Compact reports whether the terminal is too short for tall keys.
// An unknown size (zero) counts as roomy.
func (t *Theme) Compact() bool {
	return t.Height > 0 && t.Height < FullLayoutHeight
}

// KeyPadding returns the vertical padding inside each key.
func (t *Theme) KeyPadding() int {
	if t.Compact() {
		return 0
	}
	return 1
}
