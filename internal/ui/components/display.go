// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// DefaultDisplayChars is how many characters of the display string are shown.
const DefaultDisplayChars = 9

// DisplayText cuts s down to its first max display cells. Longer numbers
// lose their tail rather than gaining an ellipsis, like a pocket calculator.
func DisplayText(s string, max int) string {
	if max <= 0 {
		max = DefaultDisplayChars
	}
	return runewidth.Truncate(s, max, "")
}

// =============================================================================
// DISPLAY COMPONENT - right-aligned number panel
// =============================================================================

// Display renders the calculator's number panel.
type Display struct {
	MaxChars int // visible characters (DefaultDisplayChars when zero)
	Width    int // outer width including borders
	theme    *styles.Theme
}

// NewDisplay creates a display panel bound to a theme.
func NewDisplay(theme *styles.Theme) *Display {
	return &Display{
		MaxChars: DefaultDisplayChars,
		theme:    theme,
	}
}

// Lines returns how many text rows the panel gets inside its border.
// Tall terminals push the number to the bottom of a three-row panel.
func (d *Display) Lines() int {
	if d.theme.Compact() {
		return 1
	}
	return 3
}

// View renders the panel showing text, the untruncated display string.
func (d *Display) View(text string) string {
	inner := d.Width - 2
	if inner < d.MaxChars+2 {
		inner = d.MaxChars + 2
	}

	return d.theme.Display.
		Width(inner).
		Height(d.Lines()).
		AlignVertical(lipgloss.Bottom).
		Render(d.theme.DisplayText.Render(DisplayText(text, d.MaxChars)))
}
