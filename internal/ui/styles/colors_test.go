// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TestPaletteHexValues checks every palette entry is a 6-digit hex pair.
func TestPaletteHexValues(t *testing.T) {
	palette := map[string]lipgloss.AdaptiveColor{
		"Accent":         Accent,
		"AccentBright":   AccentBright,
		"AccentText":     AccentText,
		"SelectedBg":     SelectedBg,
		"Base":           Base,
		"Surface":        Surface,
		"SurfaceBorder":  SurfaceBorder,
		"DisplayBg":      DisplayBg,
		"DisplayBorder":  DisplayBorder,
		"FunctionKeyBg":  FunctionKeyBg,
		"FunctionKeyFg":  FunctionKeyFg,
		"DigitKeyBg":     DigitKeyBg,
		"DigitKeyFg":     DigitKeyFg,
		"DigitKeyBorder": DigitKeyBorder,
		"TextPrimary":    TextPrimary,
		"TextMuted":      TextMuted,
	}

	for name, c := range palette {
		if !hexColor.MatchString(c.Light) {
			t.Errorf("%s.Light = %q is not a hex color", name, c.Light)
		}
		if !hexColor.MatchString(c.Dark) {
			t.Errorf("%s.Dark = %q is not a hex color", name, c.Dark)
		}
	}
}

func TestAccentDiffersByMode(t *testing.T) {
	if Accent.Light == Accent.Dark {
		t.Error("accent should be blue in light mode and orange in dark mode")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"", ModeAuto, true},
		{"auto", ModeAuto, true},
		{"light", ModeLight, true},
		{"dark", ModeDark, true},
		{"solarized", ModeAuto, false},
	}

	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseMode(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && tt.in != "" && got.String() != tt.in {
			t.Errorf("Mode(%d).String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}
