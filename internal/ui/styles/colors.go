// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for pocketcalc.
// Colors are Lip Gloss AdaptiveColor pairs; the Theme picks one side.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Accent - Operator and equals keys. Blue in light mode, orange in dark.
var Accent = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#F97316"}

// AccentBright - Hover/focus tint of the accent
var AccentBright = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#FB923C"}

// AccentText - Text on accent keys
var AccentText = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

// SelectedBg - Background of the operator key that is currently pending
var SelectedBg = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Base - Page background
var Base = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}

// Surface - Calculator body
var Surface = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#000000"}

// SurfaceBorder - Calculator body outline
var SurfaceBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#1F2937"}

// DisplayBg - Display panel background
var DisplayBg = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}

// DisplayBorder - Display panel outline
var DisplayBorder = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}

// =============================================================================
// KEY COLORS
// =============================================================================

// FunctionKeyBg - AC, ± and %; the same gray in both modes
var FunctionKeyBg = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#9CA3AF"}
var FunctionKeyFg = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#000000"}

// Digit keys and "."
var DigitKeyBg = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#374151"}
var DigitKeyFg = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
var DigitKeyBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Display digits and titles
var TextPrimary = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

// TextMuted - Help footer and hints
var TextMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

// =============================================================================
// MODE
// =============================================================================

// Mode selects the light or dark palette.
type Mode int

const (
	ModeAuto Mode = iota
	ModeLight
	ModeDark
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "auto"
	}
}

// ParseMode accepts "auto", "light" and "dark". Anything else is reported
// as not ok and maps to ModeAuto.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "auto":
		return ModeAuto, true
	case "light":
		return ModeLight, true
	case "dark":
		return ModeDark, true
	default:
		return ModeAuto, false
	}
}
