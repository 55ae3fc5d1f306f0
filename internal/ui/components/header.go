// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pocketcalc/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - title and theme toggle
// =============================================================================

// Header is the one-line title bar. Its right end holds the theme toggle.
type Header struct {
	Title string // default: "pocketcalc"
	Width int    // available width
	theme *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "pocketcalc",
		Width: 40,
		theme: theme,
	}
}

// ToggleLabel returns the toggle control text. It names the mode a click
// switches to.
func (h *Header) ToggleLabel() string {
	if h.theme.IsDark {
		return "[ light ]"
	}
	return "[ dark ]"
}

// ToggleBounds returns the half-open column range [start, end) of the
// toggle control within the header line.
func (h *Header) ToggleBounds() (start, end int) {
	w := lipgloss.Width(h.ToggleLabel())
	end = h.Width
	if end < lipgloss.Width(h.Title)+1+w {
		end = lipgloss.Width(h.Title) + 1 + w
	}
	return end - w, end
}

// View renders the header line.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render(h.Title)
	toggle := h.theme.ToggleKey.Render(h.ToggleLabel())

	start, _ := h.ToggleBounds()
	gap := start - lipgloss.Width(h.Title)
	if gap < 1 {
		gap = 1
	}
	filler := h.theme.HeaderTitle.Bold(false).Render(strings.Repeat(" ", gap))

	return title + filler + toggle
}
